package gridastar

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrInvalidPoint is returned when a point literal cannot be parsed.
	ErrInvalidPoint = errors.New("invalid point")
	// ErrInvalidMoveSet is returned when a move set name is not recognised.
	ErrInvalidMoveSet = errors.New("invalid move set")
)

// Point is a location on the unbounded integer lattice.
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point { return Point{p.X + d.X, p.Y + d.Y} }

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// ParsePoint parses "x,y", optionally wrapped in parentheses.
func ParsePoint(s string) (Point, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "(")
	raw = strings.TrimSuffix(raw, ")")
	xs, ys, ok := strings.Cut(raw, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w %q: want x,y", ErrInvalidPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("%w %q: %w", ErrInvalidPoint, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("%w %q: %w", ErrInvalidPoint, s, err)
	}
	return Point{X: x, Y: y}, nil
}

// ParsePoints parses a semicolon separated list such as "2,1;2,2".
// Empty items are ignored.
func ParsePoints(s string) ([]Point, error) {
	var points []Point
	for _, item := range strings.Split(s, ";") {
		if strings.TrimSpace(item) == "" {
			continue
		}
		p, err := ParsePoint(item)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// MoveSet selects which unit steps are allowed from a point. Any value
// other than OrthogonalPlusDiagonal moves like Orthogonal.
type MoveSet int

const (
	// Orthogonal allows the four axis-aligned steps.
	Orthogonal MoveSet = iota
	// OrthogonalPlusDiagonal adds the four diagonal steps. A diagonal step
	// costs the same as an orthogonal one.
	OrthogonalPlusDiagonal
)

var (
	orthogonalOffsets = []Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalOffsets   = []Point{{1, 1}, {-1, -1}, {1, -1}, {-1, 1}}
)

// Offsets returns the unit steps of the move set.
func (m MoveSet) Offsets() []Point {
	if m == OrthogonalPlusDiagonal {
		return append(slices.Clone(orthogonalOffsets), diagonalOffsets...)
	}
	return slices.Clone(orthogonalOffsets)
}

// Neighbors returns the points one step away from p. Unknown move sets
// yield the four orthogonal neighbours.
func (m MoveSet) Neighbors(p Point) []Point {
	n := 4
	if m == OrthogonalPlusDiagonal {
		n = 8
	}
	out := make([]Point, 0, n)
	for _, d := range orthogonalOffsets {
		out = append(out, p.Add(d))
	}
	if m == OrthogonalPlusDiagonal {
		for _, d := range diagonalOffsets {
			out = append(out, p.Add(d))
		}
	}
	return out
}

func (m MoveSet) String() string {
	switch m {
	case Orthogonal:
		return "4"
	case OrthogonalPlusDiagonal:
		return "8"
	default:
		return "MoveSet(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMoveSet accepts "4", "orthogonal", "8" or "diagonal".
func ParseMoveSet(s string) (MoveSet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "4", "orthogonal":
		return Orthogonal, nil
	case "8", "diagonal":
		return OrthogonalPlusDiagonal, nil
	}
	return Orthogonal, fmt.Errorf("%w %q", ErrInvalidMoveSet, s)
}

// ObstacleSet holds impassable points. A nil set is empty.
type ObstacleSet map[Point]struct{}

// NewObstacleSet builds a set from the given points.
func NewObstacleSet(points ...Point) ObstacleSet {
	set := make(ObstacleSet, len(points))
	for _, p := range points {
		set[p] = struct{}{}
	}
	return set
}

// Contains reports whether p is blocked.
func (s ObstacleSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

// Add blocks p.
func (s ObstacleSet) Add(p Point) { s[p] = struct{}{} }

// Len returns the number of blocked points.
func (s ObstacleSet) Len() int { return len(s) }

// Points returns the blocked points ordered by row, then column.
func (s ObstacleSet) Points() []Point {
	out := make([]Point, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// Bounds returns the smallest rectangle holding every blocked point.
// ok is false for an empty set.
func (s ObstacleSet) Bounds() (r Rect, ok bool) {
	for p := range s {
		if !ok {
			r, ok = Rect{Min: p, Max: p}, true
			continue
		}
		r = r.Union(p)
	}
	return r, ok
}

// Rect is an inclusive rectangle of lattice points.
type Rect struct {
	Min, Max Point
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Union grows r to include p.
func (r Rect) Union(p Point) Rect {
	return Rect{
		Min: Point{min(r.Min.X, p.X), min(r.Min.Y, p.Y)},
		Max: Point{max(r.Max.X, p.X), max(r.Max.Y, p.Y)},
	}
}

// Expand grows r by n cells on every side. Edges stop at the limits of
// int instead of wrapping around.
func (r Rect) Expand(n int) Rect {
	return Rect{
		Min: Point{saturatingAdd(r.Min.X, -n), saturatingAdd(r.Min.Y, -n)},
		Max: Point{saturatingAdd(r.Max.X, n), saturatingAdd(r.Max.Y, n)},
	}
}

func saturatingAdd(v, n int) int {
	switch {
	case n > 0 && v > math.MaxInt-n:
		return math.MaxInt
	case n < 0 && v < math.MinInt-n:
		return math.MinInt
	}
	return v + n
}

// Width and Height count lattice columns and rows.
func (r Rect) Width() int  { return r.Max.X - r.Min.X + 1 }
func (r Rect) Height() int { return r.Max.Y - r.Min.Y + 1 }
