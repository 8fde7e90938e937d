package scenario

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/pdrpinto/gridastar"
)

func TestReference(t *testing.T) {
	s := Reference()
	if s.Obstacles.Len() != 9 {
		t.Fatalf("reference layout has %d obstacles, want 9", s.Obstacles.Len())
	}
	result := s.Search()
	if !result.Found {
		t.Fatalf("reference layout should be solvable")
	}
	if result.Path[0] != s.Start || result.Path[len(result.Path)-1] != s.Goal {
		t.Errorf("path %v does not join start and goal", result.Path)
	}
	want := gridastar.Rect{Max: gridastar.Point{X: 4, Y: 8}}
	if got := s.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestParseASCII(t *testing.T) {
	const m = `S..#
.#.#
...G`
	s, err := ParseASCII(strings.NewReader(m), gridastar.Orthogonal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Start != (gridastar.Point{X: 0, Y: 0}) || s.Goal != (gridastar.Point{X: 3, Y: 2}) {
		t.Errorf("start %v goal %v", s.Start, s.Goal)
	}
	for _, p := range []gridastar.Point{{X: 3, Y: 0}, {X: 1, Y: 1}, {X: 3, Y: 1}} {
		if !s.Obstacles.Contains(p) {
			t.Errorf("%v should be blocked", p)
		}
	}
	if s.Obstacles.Len() != 3 {
		t.Errorf("%d obstacles, want 3", s.Obstacles.Len())
	}
	if s.Moves != gridastar.Orthogonal {
		t.Errorf("Moves = %v", s.Moves)
	}
	if path, ok := gridastar.FindPath(s.Start, s.Goal, s.Obstacles, s.Moves); !ok || len(path) != 6 {
		t.Errorf("path = %v, %v", path, ok)
	}
}

func TestParseASCIIErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"no start", "..G", ErrNoStart},
		{"no goal", "S..", ErrNoGoal},
		{"empty", "", ErrNoStart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseASCII(strings.NewReader(tt.in), gridastar.Orthogonal)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if _, err := ParseASCII(strings.NewReader("S.S\n..G"), gridastar.Orthogonal); err == nil {
		t.Errorf("expected an error for two starts")
	}
	if _, err := ParseASCII(strings.NewReader("S.G\n..G"), gridastar.Orthogonal); err == nil {
		t.Errorf("expected an error for two goals")
	}
}

func TestRandomKeepsEndpointsFree(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20; i++ {
		s := Random(20, 12, 6, 150, 0.4, gridastar.OrthogonalPlusDiagonal, rng)
		if s.Start == s.Goal {
			t.Fatalf("start equals goal")
		}
		if s.Obstacles.Contains(s.Start) || s.Obstacles.Contains(s.Goal) {
			t.Fatalf("endpoint walled: %+v", s)
		}
		area := gridastar.Rect{Max: gridastar.Point{X: 19, Y: 11}}
		for p := range s.Obstacles {
			if !area.Contains(p) {
				t.Fatalf("wall %v outside the grid", p)
			}
		}
	}
}

func TestWithBorderKeepsPathOnGrid(t *testing.T) {
	const w, h = 6, 4
	s := Scenario{
		Start:     gridastar.Point{X: 0, Y: 0},
		Goal:      gridastar.Point{X: 5, Y: 3},
		Obstacles: gridastar.NewObstacleSet(gridastar.Point{X: 1, Y: 0}, gridastar.Point{X: 0, Y: 1}),
		Moves:     gridastar.Orthogonal,
	}
	bordered := s.WithBorder(w, h)
	if s.Obstacles.Len() != 2 {
		t.Fatalf("WithBorder modified the original obstacles")
	}
	if got, want := bordered.Obstacles.Len(), 2+2*(w+2)+2*h; got != want {
		t.Errorf("%d obstacles, want %d", got, want)
	}
	// The start is boxed in on the grid; without the border the search
	// would walk around the outside.
	if _, ok := gridastar.FindPath(s.Start, s.Goal, s.Obstacles, s.Moves); !ok {
		t.Errorf("unbordered search should go around the outside")
	}
	if _, ok := gridastar.FindPath(bordered.Start, bordered.Goal, bordered.Obstacles, bordered.Moves); ok {
		t.Errorf("bordered search should not leave the grid")
	}
}
