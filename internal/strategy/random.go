package strategy

import (
	"math/rand"
	"time"

	"github.com/jkclark/shutbox/pkg/shutbox"
)

// Random enumerates every solution for the roll and picks one uniformly.
// The random source is injected at construction so runs can be replayed.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random strategy using rng. A nil rng falls back to
// a time-seeded source.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Random{rng: rng}
}

func (*Random) Name() string { return "random" }

func (s *Random) Choose(numbers []int, roll int) shutbox.Solution {
	solutions := shutbox.FindAllSolutions(numbers, roll)
	if len(solutions) == 0 {
		return nil
	}
	return solutions[s.rng.Intn(len(solutions))]
}
