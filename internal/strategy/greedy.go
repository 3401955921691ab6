package strategy

import (
	"slices"

	"github.com/jkclark/shutbox/pkg/shutbox"
)

// LowestFirst removes the lowest possible numbers first: it commits to the
// smallest untried number and backtracks only when no completion exists.
type LowestFirst struct{}

func (LowestFirst) Name() string { return "lowest" }

// Choose returns the first solution found by ascending greedy search, or
// nil when the roll cannot be made.
func (LowestFirst) Choose(numbers []int, roll int) shutbox.Solution {
	// Sort a copy ourselves: the fail-fast rule below is only valid on
	// ascending input, and caller order is not trusted.
	sorted := slices.Clone(numbers)
	slices.Sort(sorted)

	var answer shutbox.Solution
	if !ascendingSearch(sorted, 0, roll, &answer) {
		return nil
	}
	return answer
}

// ascendingSearch tries candidates from index start upward. A candidate
// larger than the remaining target fails the whole branch: every later
// candidate is at least as large.
func ascendingSearch(numbers []int, start, remaining int, acc *shutbox.Solution) bool {
	if remaining == 0 {
		return true
	}
	for i := start; i < len(numbers); i++ {
		n := numbers[i]
		if n > remaining {
			return false
		}
		*acc = append(*acc, n)
		if ascendingSearch(numbers, i+1, remaining-n, acc) {
			return true
		}
		*acc = (*acc)[:len(*acc)-1]
	}
	return false
}

// HighestFirst removes the highest possible numbers first, the mirror of
// LowestFirst.
type HighestFirst struct{}

func (HighestFirst) Name() string { return "highest" }

// Choose returns the first solution found by descending greedy search, or
// nil when the roll cannot be made.
func (HighestFirst) Choose(numbers []int, roll int) shutbox.Solution {
	sorted := slices.Clone(numbers)
	slices.SortFunc(sorted, func(a, b int) int { return b - a })

	var answer shutbox.Solution
	if !descendingSearch(sorted, 0, roll, &answer) {
		return nil
	}
	return answer
}

// descendingSearch tries candidates from index start downward in value.
// An oversized candidate is skipped, not fatal: smaller numbers follow.
func descendingSearch(numbers []int, start, remaining int, acc *shutbox.Solution) bool {
	if remaining == 0 {
		return true
	}
	for i := start; i < len(numbers); i++ {
		n := numbers[i]
		if n > remaining {
			continue
		}
		*acc = append(*acc, n)
		if descendingSearch(numbers, i+1, remaining-n, acc) {
			return true
		}
		*acc = (*acc)[:len(*acc)-1]
	}
	return false
}
