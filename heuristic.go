package gridastar

import "math"

// Heuristic returns the estimated cost from one point to another.
type Heuristic func(from, to Point) float64

// Euclidean is the straight-line distance between two points.
func Euclidean(from, to Point) float64 {
	dx := float64(from.X - to.X)
	dy := float64(from.Y - to.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DiagonalEuclidean is the straight-line distance measured in diagonal
// steps. A unit diagonal move covers sqrt(2) of distance at cost 1, so this
// never overestimates when diagonals are allowed.
func DiagonalEuclidean(from, to Point) float64 {
	return Euclidean(from, to) / math.Sqrt2
}

// DefaultHeuristic returns the straight-line estimate in the cost units of
// the move set.
func DefaultHeuristic(moves MoveSet) Heuristic {
	if moves == OrthogonalPlusDiagonal {
		return DiagonalEuclidean
	}
	return Euclidean
}
