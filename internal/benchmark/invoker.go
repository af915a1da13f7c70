package benchmark

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"time"
)

// CompilerInvoker invokes the compiler under test as a child process. The
// input file path is appended after any configured arguments, so release-mode
// flags come from Args. Standard output is discarded; standard error is
// captured for diagnostics.
type CompilerInvoker struct {
	Path string
	Args []string
}

// Invoke runs the compiler once against inputPath and waits for it to exit.
// The context bounds the child process: when it expires the process is killed.
func (ci *CompilerInvoker) Invoke(ctx context.Context, inputPath string) (Invocation, error) {
	args := append(append([]string{}, ci.Args...), inputPath)
	cmd := exec.CommandContext(ctx, ci.Path, args...)

	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	inv := Invocation{
		Stderr:  stderr.String(),
		Elapsed: elapsed,
	}
	if err == nil {
		return inv, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		inv.ExitCode = exitErr.ExitCode()
		return inv, nil
	}
	return inv, err
}
