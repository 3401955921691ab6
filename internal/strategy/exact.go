package strategy

import (
	"slices"

	"github.com/jkclark/shutbox/pkg/shutbox"
)

// ExactThenLowest takes the single number matching the roll when it is
// still on the board, and otherwise plays like LowestFirst.
type ExactThenLowest struct {
	fallback LowestFirst
}

func (ExactThenLowest) Name() string { return "exact-lowest" }

func (s ExactThenLowest) Choose(numbers []int, roll int) shutbox.Solution {
	if slices.Contains(numbers, roll) {
		return shutbox.Solution{roll}
	}
	return s.fallback.Choose(numbers, roll)
}

// ExactThenHighest takes the single number matching the roll when it is
// still on the board, and otherwise plays like HighestFirst.
type ExactThenHighest struct {
	fallback HighestFirst
}

func (ExactThenHighest) Name() string { return "exact-highest" }

func (s ExactThenHighest) Choose(numbers []int, roll int) shutbox.Solution {
	if slices.Contains(numbers, roll) {
		return shutbox.Solution{roll}
	}
	return s.fallback.Choose(numbers, roll)
}
