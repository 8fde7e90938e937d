package gridastar

import (
	"maps"
	"slices"
)

// StepSnapshot exposes the per-iteration state of the search. Maps and the
// path are copies owned by the caller.
type StepSnapshot struct {
	Current   Point
	Open      map[Point]bool
	Closed    map[Point]bool
	CameFrom  map[Point]Point
	Done      bool
	Found     bool
	Path      []Point
	StepIndex int
}

// Stepper runs a search one node expansion at a time.
type Stepper struct {
	start     Point
	goal      Point
	s         *search
	stepCount int
	current   Point
}

// NewStepper prepares a search with the same semantics as Search.
func NewStepper(
	start Point,
	goal Point,
	obstacles ObstacleSet,
	moves MoveSet,
	options ...Option,
) *Stepper {
	return &Stepper{
		start:   start,
		goal:    goal,
		s:       newSearch(start, goal, obstacles, moves, applyOptions(options)),
		current: start,
	}
}

// Start returns the query's start point.
func (st *Stepper) Start() Point { return st.start }

// Goal returns the query's goal point.
func (st *Stepper) Goal() Point { return st.goal }

// Done reports whether the search has finished.
func (st *Stepper) Done() bool { return st.s.done }

// Step advances the search by one node expansion and returns a snapshot.
// After the search finishes every call returns the final snapshot.
func (st *Stepper) Step() StepSnapshot {
	if !st.s.done {
		if current, ok := st.s.advance(); ok {
			st.stepCount++
			st.current = current
		}
	}
	return st.snapshot()
}

// Result returns the search outcome. It is only meaningful once Done.
func (st *Stepper) Result() Result {
	r := st.s.result()
	r.Path = slices.Clone(r.Path)
	return r
}

func (st *Stepper) snapshot() StepSnapshot {
	return StepSnapshot{
		Current:   st.current,
		Open:      st.s.openPoints(),
		Closed:    maps.Clone(st.s.visited),
		CameFrom:  maps.Clone(st.s.cameFrom),
		Done:      st.s.done,
		Found:     st.s.found,
		Path:      slices.Clone(st.s.path),
		StepIndex: st.stepCount,
	}
}
