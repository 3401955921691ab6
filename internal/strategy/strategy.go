// Package strategy implements the number-removal strategies compared by
// the simulator. Every strategy answers one question per turn: given the
// numbers still on the board and the dice total, which numbers come off?
package strategy

import (
	"fmt"
	"math/rand"

	"github.com/jkclark/shutbox/pkg/shutbox"
)

// Strategy picks zero or one solution for a turn. An empty Solution means
// no legal move, which ends the game.
type Strategy interface {
	Name() string
	Choose(numbers []int, roll int) shutbox.Solution
}

// Names lists every strategy understood by ForName, in a stable order
// suitable for display and for the CLI's "all" shorthand.
func Names() []string {
	return []string{
		"lowest",
		"highest",
		"exact-lowest",
		"exact-highest",
		"random",
		"fewest-lowest",
		"fewest-highest",
		"most-lowest",
		"most-highest",
	}
}

// ForName returns the strategy for a name from Names. The rng is used
// only by strategies that need randomness; nil means a time-seeded
// source. Unknown names are an error.
func ForName(name string, rng *rand.Rand) (Strategy, error) {
	switch name {
	case "lowest":
		return LowestFirst{}, nil
	case "highest":
		return HighestFirst{}, nil
	case "exact-lowest":
		return ExactThenLowest{}, nil
	case "exact-highest":
		return ExactThenHighest{}, nil
	case "random":
		return NewRandom(rng), nil
	case "fewest-lowest":
		return NewFewestNumbers("fewest-lowest", LowestNumber), nil
	case "fewest-highest":
		return NewFewestNumbers("fewest-highest", HighestNumber), nil
	case "most-lowest":
		return NewMostNumbers("most-lowest", LowestNumber), nil
	case "most-highest":
		return NewMostNumbers("most-highest", HighestNumber), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
