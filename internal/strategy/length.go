package strategy

import (
	"slices"

	"github.com/jkclark/shutbox/pkg/shutbox"
)

// Secondary ranks a solution for tie-breaking among candidates of equal
// length; the smallest key wins. Ties after that are resolved by
// enumeration order.
type Secondary func(shutbox.Solution) int

// LowestNumber prefers the solution containing the lowest number.
func LowestNumber(s shutbox.Solution) int {
	return slices.Min(s)
}

// HighestNumber prefers the solution containing the highest number.
func HighestNumber(s shutbox.Solution) int {
	return -slices.Max(s)
}

// FewestNumbers picks the solution that removes the fewest numbers,
// breaking length ties with its secondary ranking.
type FewestNumbers struct {
	name      string
	secondary Secondary
}

// NewFewestNumbers returns a FewestNumbers strategy. A nil secondary
// defaults to LowestNumber.
func NewFewestNumbers(name string, secondary Secondary) FewestNumbers {
	if secondary == nil {
		secondary = LowestNumber
	}
	return FewestNumbers{name: name, secondary: secondary}
}

func (s FewestNumbers) Name() string { return s.name }

func (s FewestNumbers) Choose(numbers []int, roll int) shutbox.Solution {
	solutions := shutbox.FindAllSolutions(numbers, roll)
	return pickByLength(solutions, s.secondary, false)
}

// MostNumbers picks the solution that removes the most numbers, breaking
// length ties with its secondary ranking.
type MostNumbers struct {
	name      string
	secondary Secondary
}

// NewMostNumbers returns a MostNumbers strategy. A nil secondary defaults
// to LowestNumber.
func NewMostNumbers(name string, secondary Secondary) MostNumbers {
	if secondary == nil {
		secondary = LowestNumber
	}
	return MostNumbers{name: name, secondary: secondary}
}

func (s MostNumbers) Name() string { return s.name }

func (s MostNumbers) Choose(numbers []int, roll int) shutbox.Solution {
	solutions := shutbox.FindAllSolutions(numbers, roll)
	return pickByLength(solutions, s.secondary, true)
}

// pickByLength restricts solutions to the extreme length (longest when
// most is true, shortest otherwise) and returns the candidate with the
// smallest secondary key.
func pickByLength(solutions []shutbox.Solution, secondary Secondary, most bool) shutbox.Solution {
	if len(solutions) == 0 {
		return nil
	}

	target := len(solutions[0])
	for _, sol := range solutions[1:] {
		if most && len(sol) > target {
			target = len(sol)
		}
		if !most && len(sol) < target {
			target = len(sol)
		}
	}

	var best shutbox.Solution
	bestKey := 0
	for _, sol := range solutions {
		if len(sol) != target {
			continue
		}
		key := secondary(sol)
		if best == nil || key < bestKey {
			best = sol
			bestKey = key
		}
	}
	return best
}
