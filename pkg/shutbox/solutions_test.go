package shutbox

import (
	"math/rand"
	"slices"
	"testing"
)

func containsSolution(solutions []Solution, want Solution) bool {
	for _, s := range solutions {
		if s.Equal(want) {
			return true
		}
	}
	return false
}

func TestFindAllSolutionsExample(t *testing.T) {
	solutions := FindAllSolutions([]int{1, 2, 3, 4}, 5)

	if len(solutions) != 2 {
		t.Fatalf("expected 2 solutions, got %d: %v", len(solutions), solutions)
	}
	if !containsSolution(solutions, Solution{1, 4}) {
		t.Errorf("missing solution {1,4}: %v", solutions)
	}
	if !containsSolution(solutions, Solution{2, 3}) {
		t.Errorf("missing solution {2,3}: %v", solutions)
	}
}

func TestFindAllSolutionsNoSolution(t *testing.T) {
	if got := FindAllSolutions([]int{7, 8, 9}, 5); len(got) != 0 {
		t.Errorf("expected no solutions, got %v", got)
	}
	if got := FindAllSolutions(nil, 5); len(got) != 0 {
		t.Errorf("expected no solutions for empty board, got %v", got)
	}
}

func TestFindAllSolutionsSingleton(t *testing.T) {
	solutions := FindAllSolutions([]int{6}, 6)
	if len(solutions) != 1 || !solutions[0].Equal(Solution{6}) {
		t.Errorf("expected [{6}], got %v", solutions)
	}
}

// bruteForceSolutions enumerates subsets by bitmask, as an oracle.
func bruteForceSolutions(numbers []int, target int) []Solution {
	var solutions []Solution
	for mask := 1; mask < 1<<len(numbers); mask++ {
		var subset Solution
		for i, n := range numbers {
			if mask&(1<<i) != 0 {
				subset = append(subset, n)
			}
		}
		if subset.Sum() == target {
			solutions = append(solutions, subset)
		}
	}
	return solutions
}

func TestFindAllSolutionsMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		board := NewBoard()
		rng.Shuffle(len(board), func(i, j int) { board[i], board[j] = board[j], board[i] })
		numbers := board[:2+rng.Intn(7)]
		target := 2 + rng.Intn(11)

		got := FindAllSolutions(numbers, target)
		want := bruteForceSolutions(numbers, target)

		if len(got) != len(want) {
			t.Fatalf("numbers=%v target=%d: got %d solutions, want %d (%v vs %v)",
				numbers, target, len(got), len(want), got, want)
		}
		for _, w := range want {
			if !containsSolution(got, w) {
				t.Errorf("numbers=%v target=%d: missing %v", numbers, target, w)
			}
		}
	}
}

func TestFindAllSolutionsProperties(t *testing.T) {
	numbers := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	for target := 2; target <= 12; target++ {
		solutions := FindAllSolutions(numbers, target)
		for i, s := range solutions {
			if s.Sum() != target {
				t.Errorf("target=%d: solution %v sums to %d", target, s, s.Sum())
			}
			// distinct elements, all drawn from the input
			seen := map[int]bool{}
			for _, n := range s {
				if seen[n] {
					t.Errorf("target=%d: repeated element in %v", target, s)
				}
				seen[n] = true
				if !slices.Contains(numbers, n) {
					t.Errorf("target=%d: %d not on board in %v", target, n, s)
				}
			}
			// no duplicate subsets
			for _, other := range solutions[i+1:] {
				if s.Equal(other) {
					t.Errorf("target=%d: duplicate subset %v", target, s)
				}
			}
		}
	}
}

func TestFindAllSolutionsDeterministic(t *testing.T) {
	numbers := []int{1, 2, 3, 4, 5, 6}
	a := FindAllSolutions(numbers, 7)
	b := FindAllSolutions(numbers, 7)
	if len(a) != len(b) {
		t.Fatalf("non-deterministic result count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !slices.Equal(a[i], b[i]) {
			t.Errorf("non-deterministic order at %d: %v vs %v", i, a[i], b[i])
		}
	}
}
