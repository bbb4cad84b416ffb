package timing

import (
	"slices"
	"time"
)

// Measure runs action once and returns the wall-clock time it took.
// time.Now carries a monotonic reading, so the result is immune to clock
// adjustments.
func Measure(action func()) time.Duration {
	start := time.Now()
	action()
	return time.Since(start)
}

// Samples holds one duration per invocation, in run order.
type Samples []time.Duration

// Sample runs action n times, measuring each run. n below 1 counts as 1.
func Sample(n int, action func()) Samples {
	if n < 1 {
		n = 1
	}

	samples := make(Samples, n)
	for i := range samples {
		samples[i] = Measure(action)
	}
	return samples
}

func (s Samples) sorted() []time.Duration {
	out := slices.Clone([]time.Duration(s))
	slices.Sort(out)
	return out
}

func (s Samples) Min() time.Duration {
	if len(s) == 0 {
		return 0
	}
	return s.sorted()[0]
}

// Median returns the middle sample, or the mean of the two middle samples
// for an even count.
func (s Samples) Median() time.Duration {
	if len(s) == 0 {
		return 0
	}
	sorted := s.sorted()
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func (s Samples) Mean() time.Duration {
	if len(s) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s {
		total += d
	}
	return total / time.Duration(len(s))
}
