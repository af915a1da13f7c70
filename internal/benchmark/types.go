// internal/benchmark/types.go
// Package benchmark runs repeated timed invocations of an external compiler.
package benchmark

import (
	"context"
	"time"
)

// SampleSet is the complete ordered sequence of wall-clock samples measured
// for one test case. A SampleSet is only ever complete: a failed run produces
// no SampleSet at all.
type SampleSet []time.Duration

// Invocation captures the observable outcome of a single compiler run.
type Invocation struct {
	ExitCode int
	Stderr   string
	Elapsed  time.Duration
}

// Invoker runs the compiler under test once against the given input file.
// A non-nil error means the process could not be launched or waited on;
// a non-zero exit status is reported through Invocation.ExitCode instead.
type Invoker interface {
	Invoke(ctx context.Context, inputPath string) (Invocation, error)
}
