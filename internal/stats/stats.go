// Package stats aggregates final scores from simulated games into the
// descriptive statistics used to compare strategies.
package stats

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics over one batch of games.
type Summary struct {
	Games    int     `json:"games"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Median   float64 `json:"median"`
	Min      int     `json:"min"`
	Max      int     `json:"max"`
	Shut     int     `json:"shut"`      // games with score 0
	ShutRate float64 `json:"shut_rate"` // Shut / Games
	AvgTurns float64 `json:"avg_turns"`
}

// Summarize computes a Summary from per-game scores and turn counts.
// The two slices must have equal length; empty input yields a zero
// Summary.
func Summarize(scores, turns []int) Summary {
	n := len(scores)
	if n == 0 {
		return Summary{}
	}

	fs := make([]float64, n)
	shut := 0
	min, max := scores[0], scores[0]
	for i, s := range scores {
		fs[i] = float64(s)
		if s == 0 {
			shut++
		}
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}

	ft := make([]float64, len(turns))
	for i, t := range turns {
		ft[i] = float64(t)
	}

	sorted := slices.Clone(fs)
	slices.Sort(sorted)

	summary := Summary{
		Games:    n,
		Mean:     stat.Mean(fs, nil),
		Median:   stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:      min,
		Max:      max,
		Shut:     shut,
		ShutRate: float64(shut) / float64(n),
	}
	if n > 1 {
		summary.StdDev = stat.StdDev(fs, nil)
	}
	if len(ft) > 0 {
		summary.AvgTurns = stat.Mean(ft, nil)
	}
	return summary
}

// Histogram counts games per final score. The returned slice has
// maxScore+1 buckets; scores outside [0, maxScore] are ignored.
func Histogram(scores []int, maxScore int) []int {
	counts := make([]int, maxScore+1)
	for _, s := range scores {
		if s >= 0 && s <= maxScore {
			counts[s]++
		}
	}
	return counts
}
