// internal/report/report.go
// Package report drives the benchmark run and formats its results.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/mwiater/compbench/internal/benchmark"
	"github.com/mwiater/compbench/internal/registry"
	"github.com/mwiater/compbench/internal/stats"
	"github.com/mwiater/compbench/internal/util"
)

// Measurer produces a complete sample set for one source text.
type Measurer interface {
	Measure(ctx context.Context, source string, iterations int, timeout time.Duration) (benchmark.SampleSet, error)
}

// Observer receives progress notifications while a report runs. All methods
// are called from the single control goroutine, in registry order.
type Observer interface {
	CaseStarted(index int, name string)
	CaseFinished(index int, name string, st stats.Statistics)
	CaseFailed(index int, name string, diagnostic string)
}

// CaseResult is the exportable outcome for one test case.
type CaseResult struct {
	Name         string  `json:"name"`
	Iterations   int     `json:"iterations"`
	Success      bool    `json:"success"`
	Error        string  `json:"error,omitempty"`
	MeanMillis   float64 `json:"meanMs,omitempty"`
	MinMillis    float64 `json:"minMs,omitempty"`
	MaxMillis    float64 `json:"maxMs,omitempty"`
	StdDevMillis float64 `json:"stddevMs,omitempty"`
	TotalMillis  float64 `json:"totalMs,omitempty"`
	Throughput   float64 `json:"invocationsPerSecond,omitempty"`
}

// Printer runs every registered test case through the measurer and writes a
// human-readable block per case to Out. A failing case is reported and the
// run moves on; only whole-run cancellation or an export fault stops it.
type Printer struct {
	Cases      []registry.TestCase
	Measurer   Measurer
	Iterations int
	Timeout    time.Duration
	Out        io.Writer
	ExportDir  string
	Observer   Observer
}

// NewPrinter creates a Printer over the given cases.
func NewPrinter(cases []registry.TestCase, m Measurer, iterations int, timeout time.Duration, out io.Writer) *Printer {
	return &Printer{
		Cases:      cases,
		Measurer:   m,
		Iterations: iterations,
		Timeout:    timeout,
		Out:        out,
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	okMark      = color.New(color.FgGreen).SprintFunc()
	failMark    = color.New(color.FgRed).SprintFunc()
)

// Run executes the full report. It returns nil when the report completed,
// even if individual cases failed.
func (p *Printer) Run(ctx context.Context) error {
	if len(p.Cases) == 0 {
		return errors.New("no test cases registered")
	}

	fmt.Fprintln(p.Out, headerStyle.Render("Compiler Benchmark Report"))
	fmt.Fprintln(p.Out, headerStyle.Render("========================="))

	results := make([]CaseResult, 0, len(p.Cases))
	for i, tc := range p.Cases {
		if p.Observer != nil {
			p.Observer.CaseStarted(i, tc.Name)
		}

		samples, err := p.Measurer.Measure(ctx, tc.Source, p.Iterations, p.Timeout)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			results = append(results, p.reportFailure(i, tc.Name, err))
			continue
		}

		st, err := stats.Summarize(samples)
		if err != nil {
			// Contract violation: an empty sample set must never reach the
			// aggregator. Fatal to this entry, loudly reported.
			results = append(results, p.reportFailure(i, tc.Name, err))
			continue
		}

		p.printStatistics(tc.Name, st)
		if p.Observer != nil {
			p.Observer.CaseFinished(i, tc.Name, st)
		}
		results = append(results, CaseResult{
			Name:         tc.Name,
			Iterations:   p.Iterations,
			Success:      true,
			MeanMillis:   millis(st.Mean),
			MinMillis:    millis(st.Min),
			MaxMillis:    millis(st.Max),
			StdDevMillis: millis(st.StdDev),
			TotalMillis:  millis(st.Total),
			Throughput:   st.Throughput,
		})
	}

	if p.ExportDir != "" {
		if err := p.export(results); err != nil {
			return err
		}
	}
	return nil
}

// reportFailure prints a diagnostic block and records the failed entry.
func (p *Printer) reportFailure(index int, name string, err error) CaseResult {
	fmt.Fprintf(p.Out, "\n%s %s\n", failMark("✗"), nameStyle.Render(name+":"))
	fmt.Fprintf(p.Out, "  %s\n", err.Error())
	if p.Observer != nil {
		p.Observer.CaseFailed(index, name, err.Error())
	}
	return CaseResult{
		Name:       name,
		Iterations: p.Iterations,
		Error:      err.Error(),
	}
}

// printStatistics emits the per-case block with time statistics in
// milliseconds at two decimals and throughput in invocations per second.
func (p *Printer) printStatistics(name string, st stats.Statistics) {
	fmt.Fprintf(p.Out, "\n%s %s\n", okMark("✓"), nameStyle.Render(name+":"))
	fmt.Fprintf(p.Out, "  mean:       %.2f ms\n", millis(st.Mean))
	fmt.Fprintf(p.Out, "  min:        %.2f ms\n", millis(st.Min))
	fmt.Fprintf(p.Out, "  max:        %.2f ms\n", millis(st.Max))
	fmt.Fprintf(p.Out, "  stddev:     %.2f ms\n", millis(st.StdDev))
	fmt.Fprintf(p.Out, "  total:      %.2f ms (%d iterations)\n", millis(st.Total), p.Iterations)
	if math.IsInf(st.Throughput, 1) {
		fmt.Fprintf(p.Out, "  throughput: inf invocations/sec\n")
		return
	}
	fmt.Fprintf(p.Out, "  throughput: %.2f invocations/sec\n", st.Throughput)
}

// export writes the collected results to a JSON file under ExportDir.
func (p *Printer) export(results []CaseResult) error {
	if err := os.MkdirAll(p.ExportDir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	fileName := filepath.Join(p.ExportDir, fmt.Sprintf("%s-%d.json", util.Slugify("compiler benchmarks"), p.Iterations))

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := util.WriteFile(fileName, data); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	log.Printf("Benchmark results written to %s", fileName)
	return nil
}

// millis converts a duration to fractional milliseconds.
func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
