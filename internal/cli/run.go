// internal/cli/run.go
package compbench

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mwiater/compbench/internal/benchmark"
	"github.com/mwiater/compbench/internal/logging"
	"github.com/mwiater/compbench/internal/registry"
	"github.com/mwiater/compbench/internal/report"
	"github.com/mwiater/compbench/internal/tui"
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark report for every registered test case",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("tui", false, "show a live progress view while the benchmark runs")
}

// runReport resolves the compiler, builds the registry, and drives the full
// report. Per-case failures are printed and do not fail the command; only
// harness-level faults return an error.
func runReport(cmd *cobra.Command) error {
	cfg := GetConfig()
	if cfg == nil {
		return fmt.Errorf("configuration is not initialized")
	}
	if strings.TrimSpace(cfg.CompilerPath) == "" {
		return fmt.Errorf("no compiler executable configured (set compilerPath or --compiler)")
	}

	compilerPath, err := exec.LookPath(cfg.CompilerPath)
	if err != nil {
		return fmt.Errorf("compiler executable %q not found: %w", cfg.CompilerPath, err)
	}

	cases, err := registry.FromConfig(cfg)
	if err != nil {
		return err
	}

	if err := logging.Init(cfg.LogFilePath()); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	defer func() { _ = logging.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := benchmark.NewRunner(&benchmark.CompilerInvoker{Path: compilerPath, Args: cfg.CompilerArgs})
	runner.WarmupRuns = cfg.WarmupRuns

	logging.LogEvent("Benchmarking %s: %d cases, %d iterations, %s timeout",
		compilerPath, len(cases), cfg.IterationCount(), cfg.InvocationTimeout())

	printer := report.NewPrinter(cases, runner, cfg.IterationCount(), cfg.InvocationTimeout(), cmd.OutOrStdout())
	printer.ExportDir = cfg.ExportPath

	if useTUI, _ := cmd.Flags().GetBool("tui"); useTUI {
		names := make([]string, len(cases))
		for i, tc := range cases {
			names[i] = tc.Name
		}
		return runWithProgress(ctx, printer, names)
	}
	return printer.Run(ctx)
}

// runWithProgress runs the report behind a live Bubble Tea progress view.
// Measurement stays on its own goroutine and remains strictly sequential;
// the buffered report text is flushed once the view closes.
func runWithProgress(ctx context.Context, printer *report.Printer, names []string) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	finalOut := printer.Out
	var buf bytes.Buffer
	printer.Out = &buf

	program := tea.NewProgram(tui.NewModel(names, cancel))
	printer.Observer = tui.NewProgramObserver(program)

	done := make(chan error, 1)
	go func() {
		err := printer.Run(runCtx)
		program.Send(tui.RunFinishedMsg{})
		done <- err
	}()

	_, viewErr := program.Run()
	cancel()
	runErr := <-done

	flushReport(finalOut, buf.String())
	if viewErr != nil {
		return fmt.Errorf("progress view: %w", viewErr)
	}
	return runErr
}

func flushReport(out io.Writer, text string) {
	if text == "" {
		return
	}
	fmt.Fprint(out, text)
}
