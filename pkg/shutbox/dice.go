package shutbox

import (
	"math/rand"
	"time"
)

// DieSides is the number of faces on a die.
const DieSides = 6

// Roller produces single die rolls. Implementations must return values
// uniform over [1, DieSides].
type Roller interface {
	Roll() int
}

// DiceRoller rolls dice from an injected random source, so simulations
// can be replayed from a seed.
type DiceRoller struct {
	rng *rand.Rand
}

// NewRoller returns a DiceRoller using rng. A nil rng falls back to a
// time-seeded source.
func NewRoller(rng *rand.Rand) *DiceRoller {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &DiceRoller{rng: rng}
}

// Roll returns a single die result in [1, DieSides].
func (d *DiceRoller) Roll() int {
	return d.rng.Intn(DieSides) + 1
}

// RollForBoard returns this turn's roll total: one die when only the 1
// tile remains, otherwise the sum of two dice.
func RollForBoard(b Board, r Roller) int {
	if b.OnlyOneLeft() {
		return r.Roll()
	}
	return r.Roll() + r.Roll()
}
