package stats

import (
	"math"
	"testing"
)

func TestSummarizeKnownValues(t *testing.T) {
	scores := []int{0, 3, 9}
	turns := []int{8, 5, 6}

	s := Summarize(scores, turns)

	if s.Games != 3 {
		t.Errorf("games: expected 3, got %d", s.Games)
	}
	if math.Abs(s.Mean-4.0) > 1e-9 {
		t.Errorf("mean: expected 4.0, got %f", s.Mean)
	}
	// Sample standard deviation of {0,3,9}: sqrt(21)
	if math.Abs(s.StdDev-math.Sqrt(21)) > 1e-9 {
		t.Errorf("stddev: expected %f, got %f", math.Sqrt(21), s.StdDev)
	}
	if s.Median != 3 {
		t.Errorf("median: expected 3, got %f", s.Median)
	}
	if s.Min != 0 || s.Max != 9 {
		t.Errorf("min/max: expected 0/9, got %d/%d", s.Min, s.Max)
	}
	if s.Shut != 1 {
		t.Errorf("shut: expected 1, got %d", s.Shut)
	}
	if math.Abs(s.ShutRate-1.0/3.0) > 1e-9 {
		t.Errorf("shutRate: expected 1/3, got %f", s.ShutRate)
	}
	if math.Abs(s.AvgTurns-19.0/3.0) > 1e-9 {
		t.Errorf("avgTurns: expected 19/3, got %f", s.AvgTurns)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil)
	if s.Games != 0 || s.Mean != 0 || s.Shut != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestSummarizeSingleGame(t *testing.T) {
	s := Summarize([]int{45}, []int{1})
	if s.Games != 1 || s.Mean != 45 || s.StdDev != 0 {
		t.Errorf("unexpected summary %+v", s)
	}
}

func TestHistogram(t *testing.T) {
	counts := Histogram([]int{0, 0, 3, 45, 99, -1}, 45)

	if len(counts) != 46 {
		t.Fatalf("expected 46 buckets, got %d", len(counts))
	}
	if counts[0] != 2 {
		t.Errorf("bucket 0: expected 2, got %d", counts[0])
	}
	if counts[3] != 1 {
		t.Errorf("bucket 3: expected 1, got %d", counts[3])
	}
	if counts[45] != 1 {
		t.Errorf("bucket 45: expected 1, got %d", counts[45])
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 4 {
		t.Errorf("out-of-range scores should be ignored, counted %d", total)
	}
}
