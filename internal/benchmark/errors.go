package benchmark

import (
	"fmt"
	"time"
)

// FailureKind classifies why a measurement was aborted.
type FailureKind int

const (
	// SpawnFailure means the compiler executable could not be launched.
	SpawnFailure FailureKind = iota
	// ExecutionFailure means the compiler ran and exited with a non-zero status.
	ExecutionFailure
	// TimeoutFailure means the compiler did not exit within the configured bound.
	TimeoutFailure
)

// String returns a human-readable name for the failure kind.
func (k FailureKind) String() string {
	switch k {
	case SpawnFailure:
		return "spawn failure"
	case ExecutionFailure:
		return "execution failure"
	case TimeoutFailure:
		return "timeout"
	default:
		return "unknown failure"
	}
}

// InvocationError reports the first failing invocation of a measurement.
// All samples collected before the failure are discarded by the caller.
type InvocationError struct {
	Kind      FailureKind
	Iteration int
	ExitCode  int
	Stderr    string
	Timeout   time.Duration
	Err       error
}

// Error renders the failure with enough context to print a diagnostic.
func (e *InvocationError) Error() string {
	switch e.Kind {
	case TimeoutFailure:
		return fmt.Sprintf("invocation %d: %s after %s", e.Iteration, e.Kind, e.Timeout)
	case ExecutionFailure:
		if e.Stderr != "" {
			return fmt.Sprintf("invocation %d: %s (exit %d): %s", e.Iteration, e.Kind, e.ExitCode, e.Stderr)
		}
		return fmt.Sprintf("invocation %d: %s (exit %d)", e.Iteration, e.Kind, e.ExitCode)
	default:
		return fmt.Sprintf("invocation %d: %s: %v", e.Iteration, e.Kind, e.Err)
	}
}

// Unwrap exposes the underlying launch error, if any.
func (e *InvocationError) Unwrap() error {
	return e.Err
}
