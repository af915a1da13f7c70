// internal/stats/stats.go
// Package stats reduces measured samples to descriptive statistics.
package stats

import (
	"errors"
	"math"
	"time"
)

// ErrNoSamples is returned when Summarize is called with an empty sequence.
// The invoker never produces an empty successful sample set, so hitting this
// indicates a programming error in the caller.
var ErrNoSamples = errors.New("statistics require at least one sample")

// Statistics holds the derived values for one complete sample set.
type Statistics struct {
	Mean   time.Duration
	Min    time.Duration
	Max    time.Duration
	StdDev time.Duration
	Total  time.Duration
	// Throughput is the number of invocations per second, the reciprocal of
	// the mean. It is +Inf when the mean is zero.
	Throughput float64
}

// Summarize computes mean, extrema, population standard deviation (dividing
// by N, not N-1), total elapsed time, and throughput for the given samples.
// It is pure: the same input always yields the same Statistics.
func Summarize(samples []time.Duration) (Statistics, error) {
	if len(samples) == 0 {
		return Statistics{}, ErrNoSamples
	}

	n := float64(len(samples))
	min := samples[0]
	max := samples[0]
	var total time.Duration
	for _, s := range samples {
		total += s
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}

	meanSeconds := total.Seconds() / n
	var squaredSum float64
	for _, s := range samples {
		diff := s.Seconds() - meanSeconds
		squaredSum += diff * diff
	}
	stddevSeconds := math.Sqrt(squaredSum / n)

	throughput := math.Inf(1)
	if meanSeconds > 0 {
		throughput = 1 / meanSeconds
	}

	return Statistics{
		Mean:       time.Duration(float64(total) / n),
		Min:        min,
		Max:        max,
		StdDev:     time.Duration(stddevSeconds * float64(time.Second)),
		Total:      total,
		Throughput: throughput,
	}, nil
}
