// Package shutbox implements the rules of the dice game Shut the Box:
// the board, dice, subset-sum solution search, and a single-game loop.
// It has no dependencies outside the standard library so that strategies,
// the simulation runner, and the server can all build on it.
package shutbox

import "slices"

// BoardSize is the highest number on a standard board.
const BoardSize = 9

// MaxScore is the score of a game where no number was removed (1+2+...+9).
const MaxScore = 45

// Board holds the numbers not yet removed, in ascending order with no
// duplicates. Values are always within [1, BoardSize].
type Board []int

// NewBoard returns a full board, numbers 1 through 9.
func NewBoard() Board {
	b := make(Board, BoardSize)
	for i := range b {
		b[i] = i + 1
	}
	return b
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	return slices.Clone(b)
}

// Contains reports whether n is still on the board.
func (b Board) Contains(n int) bool {
	return slices.Contains(b, n)
}

// Score returns the sum of the remaining numbers. Zero means the box is shut.
func (b Board) Score() int {
	sum := 0
	for _, n := range b {
		sum += n
	}
	return sum
}

// IsShut reports whether every number has been removed.
func (b Board) IsShut() bool {
	return len(b) == 0
}

// OnlyOneLeft reports whether the board is down to just the 1 tile,
// the state in which a single die is rolled instead of two.
func (b Board) OnlyOneLeft() bool {
	return len(b) == 1 && b[0] == 1
}

// Remove returns the board with the solution's numbers taken off.
// Numbers not present on the board are ignored; callers are expected to
// pass a Solution drawn from this board.
func (b Board) Remove(s Solution) Board {
	out := make(Board, 0, len(b))
	for _, n := range b {
		if !slices.Contains(s, n) {
			out = append(out, n)
		}
	}
	return out
}
