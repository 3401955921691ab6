package shutbox

import "slices"

// Solution is a set of distinct board numbers that sums exactly to a roll.
// Element order follows the order of the input it was found in.
type Solution []int

// Sum returns the total of the solution's numbers.
func (s Solution) Sum() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Equal reports whether two solutions contain the same numbers,
// ignoring order.
func (s Solution) Equal(other Solution) bool {
	if len(s) != len(other) {
		return false
	}
	a := slices.Clone(s)
	b := slices.Clone(other)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

// FindAllSolutions returns every subset of numbers that sums exactly to
// target, each number used at most once. The search walks strictly
// increasing index positions, so no subset appears twice. Output order is
// deterministic for a fixed input order but not otherwise meaningful.
func FindAllSolutions(numbers []int, target int) []Solution {
	var solutions []Solution

	var recurse func(start, remaining int, partial Solution)
	recurse = func(start, remaining int, partial Solution) {
		if remaining == 0 {
			solutions = append(solutions, slices.Clone(partial))
			return
		}
		if remaining < 0 {
			return
		}
		for i := start; i < len(numbers); i++ {
			recurse(i+1, remaining-numbers[i], append(partial, numbers[i]))
		}
	}

	recurse(0, target, nil)
	return solutions
}
