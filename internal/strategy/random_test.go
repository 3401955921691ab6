package strategy

import (
	"math/rand"
	"testing"

	"github.com/jkclark/shutbox/pkg/shutbox"
)

func TestRandomDeclinesWhenNoSolution(t *testing.T) {
	s := NewRandom(rand.New(rand.NewSource(1)))
	if got := s.Choose([]int{7, 8, 9}, 5); len(got) != 0 {
		t.Errorf("expected decline, got %v", got)
	}
}

func TestRandomAlwaysReturnsValidSolution(t *testing.T) {
	s := NewRandom(rand.New(rand.NewSource(2)))
	numbers := []int{1, 2, 3, 4, 5, 6}

	for i := 0; i < 200; i++ {
		got := s.Choose(numbers, 7)
		if len(got) == 0 {
			t.Fatal("roll 7 is always solvable here")
		}
		isValidSolution(t, numbers, 7, got)
	}
}

func TestRandomIsRoughlyUniform(t *testing.T) {
	// {1,2,3,4} with roll 5 has exactly two solutions; over many trials
	// each should come up about half the time.
	s := NewRandom(rand.New(rand.NewSource(3)))
	numbers := []int{1, 2, 3, 4}

	const trials = 4000
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		got := s.Choose(numbers, 5)
		switch {
		case got.Equal(shutbox.Solution{1, 4}):
			counts["14"]++
		case got.Equal(shutbox.Solution{2, 3}):
			counts["23"]++
		default:
			t.Fatalf("unexpected solution %v", got)
		}
	}

	for key, c := range counts {
		frac := float64(c) / trials
		if frac < 0.45 || frac > 0.55 {
			t.Errorf("solution %s chosen %.3f of the time, expected ~0.5", key, frac)
		}
	}
}

func TestRandomIsReproducibleFromSeed(t *testing.T) {
	a := NewRandom(rand.New(rand.NewSource(42)))
	b := NewRandom(rand.New(rand.NewSource(42)))
	numbers := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	for i := 0; i < 50; i++ {
		ga := a.Choose(numbers, 8)
		gb := b.Choose(numbers, 8)
		if !ga.Equal(gb) {
			t.Fatalf("trial %d diverged: %v vs %v", i, ga, gb)
		}
	}
}
