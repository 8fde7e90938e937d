package gridastar

import (
	"math"
	"testing"
)

func TestEuclidean(t *testing.T) {
	if got := Euclidean(Point{0, 0}, Point{3, 4}); got != 5 {
		t.Errorf("Euclidean = %v, want 5", got)
	}
	if got := Euclidean(Point{-1, -1}, Point{-1, -1}); got != 0 {
		t.Errorf("Euclidean to self = %v", got)
	}
}

// The default estimate must never exceed the true step count, and must drop
// by at most one per step, for both move sets.
func TestDefaultHeuristicAdmissibleAndConsistent(t *testing.T) {
	goal := Point{0, 0}
	for _, moves := range []MoveSet{Orthogonal, OrthogonalPlusDiagonal} {
		h := DefaultHeuristic(moves)
		for x := -6; x <= 6; x++ {
			for y := -6; y <= 6; y++ {
				p := Point{x, y}
				steps := abs(x) + abs(y)
				if moves == OrthogonalPlusDiagonal {
					steps = max(abs(x), abs(y))
				}
				if h(p, goal) > float64(steps)+1e-9 {
					t.Errorf("%s: h(%v) = %v exceeds %d steps", moves, p, h(p, goal), steps)
				}
				for _, n := range moves.Neighbors(p) {
					if h(p, goal) > 1+h(n, goal)+1e-9 {
						t.Errorf("%s: h drops by more than one step from %v to %v", moves, p, n)
					}
				}
			}
		}
	}
}

func TestDiagonalEuclidean(t *testing.T) {
	got := DiagonalEuclidean(Point{0, 0}, Point{5, 5})
	if math.Abs(got-5) > 1e-9 {
		t.Errorf("DiagonalEuclidean along a diagonal = %v, want 5", got)
	}
}
