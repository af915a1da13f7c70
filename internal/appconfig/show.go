package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	active := cfg
	if active == nil {
		active = &fallback
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Compiler:       %s\n", active.CompilerPath)
	if len(active.CompilerArgs) > 0 {
		fmt.Fprintf(out, "  Compiler Args:  %v\n", active.CompilerArgs)
	}
	fmt.Fprintf(out, "  Iterations:     %d\n", active.IterationCount())
	fmt.Fprintf(out, "  Timeout:        %s\n", active.InvocationTimeout())
	fmt.Fprintf(out, "  Warmup Runs:    %d\n", active.WarmupRuns)
	fmt.Fprintf(out, "  Export Path:    %s\n", active.ExportPath)
	fmt.Fprintf(out, "  Log File:       %s\n", active.LogFilePath())
	fmt.Fprintf(out, "  Debug:          %v\n", active.Debug)
	fmt.Fprintf(out, "  Config Cases:   %d\n", len(active.Cases))
}
