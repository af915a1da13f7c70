package stats

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestSummarizeBasic(t *testing.T) {
	samples := []time.Duration{
		2 * time.Second,
		1 * time.Second,
		3 * time.Second,
	}

	st, err := Summarize(samples)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if st.Mean != 2*time.Second {
		t.Fatalf("mean: %s", st.Mean)
	}
	if st.Min != 1*time.Second || st.Max != 3*time.Second {
		t.Fatalf("extrema: min=%s max=%s", st.Min, st.Max)
	}
	if st.Total != 6*time.Second {
		t.Fatalf("total: %s", st.Total)
	}
	// Population stddev of {1, 2, 3} seconds: sqrt(2/3) seconds.
	expected := time.Duration(math.Sqrt(2.0/3.0) * float64(time.Second))
	if diff := st.StdDev - expected; diff < -time.Microsecond || diff > time.Microsecond {
		t.Fatalf("stddev: %s, want ~%s", st.StdDev, expected)
	}
	if math.Abs(st.Throughput-0.5) > 1e-9 {
		t.Fatalf("throughput: %f", st.Throughput)
	}
}

func TestSummarizeOrderingInvariant(t *testing.T) {
	sets := [][]time.Duration{
		{time.Millisecond},
		{5 * time.Millisecond, 7 * time.Millisecond, 3 * time.Millisecond},
		{time.Nanosecond, time.Hour},
		{42 * time.Microsecond, 42 * time.Microsecond, 43 * time.Microsecond},
	}
	for i, samples := range sets {
		st, err := Summarize(samples)
		if err != nil {
			t.Fatalf("set %d: %v", i, err)
		}
		if st.Min > st.Mean || st.Mean > st.Max {
			t.Fatalf("set %d violates min <= mean <= max: %+v", i, st)
		}
	}
}

func TestSummarizeConstantSamples(t *testing.T) {
	samples := []time.Duration{
		7 * time.Millisecond,
		7 * time.Millisecond,
		7 * time.Millisecond,
		7 * time.Millisecond,
	}

	st, err := Summarize(samples)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if st.Mean != 7*time.Millisecond {
		t.Fatalf("mean: %s", st.Mean)
	}
	if st.StdDev != 0 {
		t.Fatalf("stddev of constant samples: %s", st.StdDev)
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	samples := []time.Duration{
		13 * time.Millisecond,
		17 * time.Millisecond,
		11 * time.Millisecond,
	}

	first, err := Summarize(samples)
	if err != nil {
		t.Fatalf("first Summarize: %v", err)
	}
	second, err := Summarize(samples)
	if err != nil {
		t.Fatalf("second Summarize: %v", err)
	}
	if first != second {
		t.Fatalf("results differ:\n%+v\n%+v", first, second)
	}
}

func TestSummarizeThroughputIsInverseMean(t *testing.T) {
	samples := []time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
	}

	st, err := Summarize(samples)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	meanSeconds := st.Mean.Seconds()
	if math.Abs(st.Throughput-1/meanSeconds) > 1e-6 {
		t.Fatalf("throughput %f != 1/mean %f", st.Throughput, 1/meanSeconds)
	}
}

func TestSummarizeZeroMean(t *testing.T) {
	st, err := Summarize([]time.Duration{0, 0, 0})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !math.IsInf(st.Throughput, 1) {
		t.Fatalf("expected +Inf throughput for zero mean, got %f", st.Throughput)
	}
	if st.Mean != 0 || st.StdDev != 0 {
		t.Fatalf("zero samples must yield zero mean and stddev: %+v", st)
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	_, err := Summarize(nil)
	if !errors.Is(err, ErrNoSamples) {
		t.Fatalf("expected ErrNoSamples, got %v", err)
	}
}

func TestSummarizePopulationFormula(t *testing.T) {
	// {2ms, 4ms}: population stddev is 1ms; the sample formula (divide by
	// N-1) would give ~1.414ms.
	st, err := Summarize([]time.Duration{2 * time.Millisecond, 4 * time.Millisecond})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if diff := st.StdDev - time.Millisecond; diff < -time.Microsecond || diff > time.Microsecond {
		t.Fatalf("stddev: %s, want 1ms (population formula)", st.StdDev)
	}
}
