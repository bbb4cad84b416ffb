package timing

import (
	"testing"
	"time"
)

func TestMeasure(t *testing.T) {
	called := 0
	elapsed := Measure(func() {
		called++
		time.Sleep(2 * time.Millisecond)
	})

	if called != 1 {
		t.Errorf("action called %d times", called)
	}
	if elapsed < 2*time.Millisecond {
		t.Errorf("elapsed too short: %s", elapsed)
	}
}

func TestSampleCount(t *testing.T) {
	tests := []struct {
		n        int
		expected int
	}{
		{0, 1},
		{-3, 1},
		{1, 1},
		{5, 5},
	}

	for _, tt := range tests {
		calls := 0
		samples := Sample(tt.n, func() { calls++ })

		if len(samples) != tt.expected || calls != tt.expected {
			t.Errorf("Sample(%d): samples=%d calls=%d, want %d", tt.n, len(samples), calls, tt.expected)
		}
	}
}

func TestStatistics(t *testing.T) {
	tests := []struct {
		samples Samples
		min     time.Duration
		median  time.Duration
		mean    time.Duration
	}{
		{Samples{}, 0, 0, 0},
		{Samples{7}, 7, 7, 7},
		{Samples{30, 10, 20}, 10, 20, 20},
		{Samples{40, 10, 30, 20}, 10, 25, 25},
		{Samples{100, 1, 1}, 1, 1, 34},
	}

	for _, tt := range tests {
		if got := tt.samples.Min(); got != tt.min {
			t.Errorf("%v Min: want=%d, got=%d", tt.samples, tt.min, got)
		}
		if got := tt.samples.Median(); got != tt.median {
			t.Errorf("%v Median: want=%d, got=%d", tt.samples, tt.median, got)
		}
		if got := tt.samples.Mean(); got != tt.mean {
			t.Errorf("%v Mean: want=%d, got=%d", tt.samples, tt.mean, got)
		}
	}
}

func TestStatisticsDoNotReorder(t *testing.T) {
	s := Samples{3, 1, 2}
	s.Median()
	if s[0] != 3 || s[1] != 1 || s[2] != 2 {
		t.Errorf("samples reordered: %v", s)
	}
}
