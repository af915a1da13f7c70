package benchmark

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Runner measures how long the compiler under test takes to process a source
// text, invoking it once per iteration, strictly sequentially. A Runner is
// safe to reuse across test cases.
type Runner struct {
	Invoker Invoker
	// WarmupRuns is the number of untimed invocations performed before the
	// timed ones. Warmup failures abort the measurement like timed ones.
	WarmupRuns int
}

// NewRunner creates a Runner that measures with the given invoker.
func NewRunner(invoker Invoker) *Runner {
	return &Runner{Invoker: invoker}
}

// Measure runs the compiler `iterations` times against source and returns the
// complete SampleSet. On the first failing invocation it returns an
// *InvocationError and discards all samples collected so far. The source is
// materialized into a single temporary file that is removed on every exit
// path.
func (r *Runner) Measure(ctx context.Context, source string, iterations int, timeout time.Duration) (SampleSet, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", iterations)
	}
	if strings.TrimSpace(source) == "" {
		return nil, errors.New("source text is empty")
	}

	inputPath, cleanup, err := materialize(source)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	for i := 0; i < r.WarmupRuns; i++ {
		if _, err := r.invokeOnce(ctx, inputPath, i+1, timeout); err != nil {
			return nil, err
		}
	}

	samples := make(SampleSet, 0, iterations)
	for i := 0; i < iterations; i++ {
		elapsed, err := r.invokeOnce(ctx, inputPath, i+1, timeout)
		if err != nil {
			return nil, err
		}
		samples = append(samples, elapsed)
	}
	return samples, nil
}

// invokeOnce performs a single bounded invocation and classifies its outcome.
func (r *Runner) invokeOnce(ctx context.Context, inputPath string, round int, timeout time.Duration) (time.Duration, error) {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	inv, err := r.Invoker.Invoke(runCtx, inputPath)

	// Whole-run cancellation (e.g. SIGINT) is not a per-case failure.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return 0, ctxErr
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return 0, &InvocationError{Kind: TimeoutFailure, Iteration: round, Timeout: timeout}
	}
	if err != nil {
		return 0, &InvocationError{Kind: SpawnFailure, Iteration: round, Err: err}
	}
	if inv.ExitCode != 0 {
		return 0, &InvocationError{
			Kind:      ExecutionFailure,
			Iteration: round,
			ExitCode:  inv.ExitCode,
			Stderr:    strings.TrimSpace(inv.Stderr),
		}
	}
	if inv.Elapsed < 0 {
		inv.Elapsed = 0
	}
	return inv.Elapsed, nil
}

// materialize writes source to a temporary file and returns its path together
// with a cleanup function. The caller must invoke cleanup exactly once.
func materialize(source string) (string, func(), error) {
	file, err := os.CreateTemp("", "compbench-*.js")
	if err != nil {
		return "", nil, fmt.Errorf("create temp source file: %w", err)
	}
	cleanup := func() { _ = os.Remove(file.Name()) }

	if _, err := file.WriteString(source); err != nil {
		_ = file.Close()
		cleanup()
		return "", nil, fmt.Errorf("write temp source file: %w", err)
	}
	if err := file.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close temp source file: %w", err)
	}
	return file.Name(), cleanup, nil
}
