// internal/tui/progress.go
// Package tui renders a live progress view for a running benchmark report.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/compbench/internal/stats"
)

// caseState tracks where a single test case is in its lifecycle.
type caseState int

const (
	casePending caseState = iota
	caseRunning
	caseDone
	caseFailed
)

// CaseStartedMsg signals that measurement began for the indexed case.
type CaseStartedMsg struct {
	Index int
}

// CaseFinishedMsg carries the computed statistics for a completed case.
type CaseFinishedMsg struct {
	Index int
	Stats stats.Statistics
}

// CaseFailedMsg carries the diagnostic for a failed case.
type CaseFailedMsg struct {
	Index      int
	Diagnostic string
}

// RunFinishedMsg signals that every case has been processed.
type RunFinishedMsg struct{}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	caseStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model is the Bubble Tea model for the benchmark progress view. Measurement
// itself stays on a single control goroutine; the model only renders the
// messages that goroutine sends between invocations.
type Model struct {
	spinner spinner.Model
	names   []string
	states  []caseState
	notes   []string
	done    bool
	cancel  context.CancelFunc
}

// NewModel creates a progress model for the named cases. cancel is invoked
// when the user interrupts the view, so the in-flight child process is torn
// down with the rest of the run.
func NewModel(names []string, cancel context.CancelFunc) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return Model{
		spinner: s,
		names:   names,
		states:  make([]caseState, len(names)),
		notes:   make([]string, len(names)),
		cancel:  cancel,
	}
}

// Init starts the spinner animation.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update advances the model for one incoming message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
		return m, nil

	case CaseStartedMsg:
		if msg.Index >= 0 && msg.Index < len(m.states) {
			m.states[msg.Index] = caseRunning
		}
		return m, nil

	case CaseFinishedMsg:
		if msg.Index >= 0 && msg.Index < len(m.states) {
			m.states[msg.Index] = caseDone
			m.notes[msg.Index] = fmt.Sprintf("mean %.2f ms, %.2f invocations/sec",
				float64(msg.Stats.Mean.Microseconds())/1000, msg.Stats.Throughput)
		}
		return m, nil

	case CaseFailedMsg:
		if msg.Index >= 0 && msg.Index < len(m.states) {
			m.states[msg.Index] = caseFailed
			m.notes[msg.Index] = msg.Diagnostic
		}
		return m, nil

	case RunFinishedMsg:
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders one line per case plus a completion counter.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Compiler Benchmark"))
	b.WriteString("\n\n")

	completed := 0
	for i, name := range m.names {
		switch m.states[i] {
		case caseRunning:
			b.WriteString(fmt.Sprintf("  %s %s\n", m.spinner.View(), caseStyle.Render(name)))
		case caseDone:
			completed++
			b.WriteString(fmt.Sprintf("  %s %s: %s\n", okStyle.Render("✓"), caseStyle.Render(name), m.notes[i]))
		case caseFailed:
			completed++
			b.WriteString(fmt.Sprintf("  %s %s: %s\n", failStyle.Render("✗"), caseStyle.Render(name), m.notes[i]))
		default:
			b.WriteString(fmt.Sprintf("  %s %s\n", pendingStyle.Render("·"), pendingStyle.Render(name)))
		}
	}

	b.WriteString(fmt.Sprintf("\n  %d/%d cases complete", completed, len(m.names)))
	if m.done {
		b.WriteString(", finished\n")
	} else {
		b.WriteString("\n")
	}
	return b.String()
}

// ProgramObserver forwards report progress into a running Bubble Tea program.
// It satisfies the report package's Observer interface.
type ProgramObserver struct {
	program *tea.Program
}

// NewProgramObserver wraps the given program.
func NewProgramObserver(program *tea.Program) *ProgramObserver {
	return &ProgramObserver{program: program}
}

// CaseStarted forwards a start notification.
func (o *ProgramObserver) CaseStarted(index int, name string) {
	o.program.Send(CaseStartedMsg{Index: index})
}

// CaseFinished forwards the statistics for a completed case.
func (o *ProgramObserver) CaseFinished(index int, name string, st stats.Statistics) {
	o.program.Send(CaseFinishedMsg{Index: index, Stats: st})
}

// CaseFailed forwards a failure diagnostic.
func (o *ProgramObserver) CaseFailed(index int, name string, diagnostic string) {
	o.program.Send(CaseFailedMsg{Index: index, Diagnostic: diagnostic})
}
