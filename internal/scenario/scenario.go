// Package scenario builds start, goal and obstacle layouts for the example
// visualizers.
package scenario

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/pdrpinto/gridastar"
)

var (
	ErrNoStart = errors.New("map has no start")
	ErrNoGoal  = errors.New("map has no goal")
)

// Scenario is one pathfinding query plus the area a visualizer should show.
type Scenario struct {
	Start     gridastar.Point
	Goal      gridastar.Point
	Obstacles gridastar.ObstacleSet
	Moves     gridastar.MoveSet
}

// Reference is the fixed layout of the original demo.
func Reference() Scenario {
	return Scenario{
		Start: gridastar.Point{X: 0, Y: 0},
		Goal:  gridastar.Point{X: 4, Y: 8},
		Obstacles: gridastar.NewObstacleSet(
			gridastar.Point{X: 2, Y: 1},
			gridastar.Point{X: 2, Y: 2},
			gridastar.Point{X: 2, Y: 3},
			gridastar.Point{X: 2, Y: 4},
			gridastar.Point{X: 2, Y: 5},
			gridastar.Point{X: 4, Y: 5},
			gridastar.Point{X: 4, Y: 6},
			gridastar.Point{X: 4, Y: 7},
			gridastar.Point{X: 3, Y: 8},
		),
		Moves: gridastar.OrthogonalPlusDiagonal,
	}
}

// Bounds is the area covering start, goal and every obstacle.
func (s Scenario) Bounds() gridastar.Rect {
	r := gridastar.Rect{Min: s.Start, Max: s.Start}.Union(s.Goal)
	if ob, ok := s.Obstacles.Bounds(); ok {
		r = r.Union(ob.Min).Union(ob.Max)
	}
	return r
}

// Search runs the scenario's query.
func (s Scenario) Search(options ...gridastar.Option) gridastar.Result {
	return gridastar.Search(s.Start, s.Goal, s.Obstacles, s.Moves, options...)
}

// Stepper prepares the scenario's query for step-by-step playback.
func (s Scenario) Stepper(options ...gridastar.Option) *gridastar.Stepper {
	return gridastar.NewStepper(s.Start, s.Goal, s.Obstacles, s.Moves, options...)
}

// ParseASCII reads a map where '#' is blocked, 'S' is the start, 'G' is the
// goal and anything else is free. Line n is row Y=n.
func ParseASCII(r io.Reader, moves gridastar.MoveSet) (Scenario, error) {
	s := Scenario{Obstacles: gridastar.NewObstacleSet(), Moves: moves}
	var haveStart, haveGoal bool

	scanner := bufio.NewScanner(r)
	for y := 0; scanner.Scan(); y++ {
		for x, c := range []rune(scanner.Text()) {
			p := gridastar.Point{X: x, Y: y}
			switch c {
			case '#':
				s.Obstacles.Add(p)
			case 'S':
				if haveStart {
					return Scenario{}, fmt.Errorf("second start at %v", p)
				}
				s.Start, haveStart = p, true
			case 'G':
				if haveGoal {
					return Scenario{}, fmt.Errorf("second goal at %v", p)
				}
				s.Goal, haveGoal = p, true
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Scenario{}, fmt.Errorf("read map: %w", err)
	}
	if !haveStart {
		return Scenario{}, ErrNoStart
	}
	if !haveGoal {
		return Scenario{}, ErrNoGoal
	}
	return s, nil
}

// Random scatters clustered walls over a w by h grid using random walks,
// then picks a distinct free start and goal. The grid's outer ring is not
// walled; see WithBorder.
func Random(w, h, clusters, steps int, density float64, moves gridastar.MoveSet, rng *rand.Rand) Scenario {
	var start, goal gridastar.Point
	for {
		start = gridastar.Point{X: rng.IntN(w), Y: rng.IntN(h)}
		goal = gridastar.Point{X: rng.IntN(w), Y: rng.IntN(h)}
		if start != goal {
			break
		}
	}

	walls := gridastar.NewObstacleSet()
	dirs := gridastar.Orthogonal.Offsets()
	area := gridastar.Rect{Max: gridastar.Point{X: w - 1, Y: h - 1}}
	for c := 0; c < clusters; c++ {
		p := gridastar.Point{X: rng.IntN(w), Y: rng.IntN(h)}
		for i := 0; i < steps; i++ {
			if rng.Float64() < density && p != start && p != goal {
				walls.Add(p)
			}
			if np := p.Add(dirs[rng.IntN(len(dirs))]); area.Contains(np) {
				p = np
			}
		}
	}
	return Scenario{Start: start, Goal: goal, Obstacles: walls, Moves: moves}
}

// WithBorder returns a copy whose obstacles also wall off the ring just
// outside the w by h grid, so paths stay on the grid.
func (s Scenario) WithBorder(w, h int) Scenario {
	walls := gridastar.NewObstacleSet(s.Obstacles.Points()...)
	for x := -1; x <= w; x++ {
		walls.Add(gridastar.Point{X: x, Y: -1})
		walls.Add(gridastar.Point{X: x, Y: h})
	}
	for y := 0; y < h; y++ {
		walls.Add(gridastar.Point{X: -1, Y: y})
		walls.Add(gridastar.Point{X: w, Y: y})
	}
	s.Obstacles = walls
	return s
}
