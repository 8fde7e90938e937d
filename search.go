package gridastar

import (
	"container/heap"

	"github.com/pdrpinto/gridastar/internal"
)

// search is the state of one query. Search and Stepper both drive it, so
// the two always agree on the path.
type search struct {
	goal      Point
	obstacles ObstacleSet
	moves     MoveSet
	heuristic Heuristic
	bounds    Rect

	open     frontier
	seq      uint64
	cost     map[Point]int
	cameFrom map[Point]Point
	visited  map[Point]bool

	expanded  int
	done      bool
	found     bool
	path      []Point
	totalCost int
}

func newSearch(start, goal Point, obstacles ObstacleSet, moves MoveSet, opts Options) *search {
	h := opts.Heuristic
	if h == nil {
		h = DefaultHeuristic(moves)
	}
	s := &search{
		goal:      goal,
		obstacles: obstacles,
		moves:     moves,
		heuristic: h,
		bounds:    searchBounds(start, goal, obstacles),
		open:      make(frontier, 0, 64),
		cost:      map[Point]int{start: 0},
		cameFrom:  make(map[Point]Point),
		visited:   make(map[Point]bool),
	}
	heap.Init(&s.open)
	s.push(start, 0)
	return s
}

// searchBounds is the box around start, goal and every obstacle, grown by
// one cell. The grown ring is free of obstacles, so any path leaving the
// box can be clamped onto the ring without getting longer.
func searchBounds(start, goal Point, obstacles ObstacleSet) Rect {
	r := Rect{Min: start, Max: start}.Union(goal)
	if ob, ok := obstacles.Bounds(); ok {
		r = r.Union(ob.Min).Union(ob.Max)
	}
	return r.Expand(1)
}

func (s *search) push(p Point, cost int) {
	s.seq++
	heap.Push(&s.open, &frontierItem{
		Point:    p,
		Cost:     cost,
		Priority: float64(cost) + s.heuristic(p, s.goal),
		seq:      s.seq,
	})
}

// advance expands the next live frontier point and returns it. ok is false
// once the frontier is exhausted.
func (s *search) advance() (current Point, ok bool) {
	if s.done {
		return Point{}, false
	}
	for s.open.Len() > 0 {
		item := heap.Pop(&s.open).(*frontierItem)
		if item.Cost > s.cost[item.Point] {
			// superseded by a cheaper entry
			continue
		}
		s.expanded++

		if item.Point == s.goal {
			s.done, s.found = true, true
			s.totalCost = item.Cost
			s.path = internal.ReconstructPath(s.cameFrom, item.Point)
			return item.Point, true
		}

		s.visited[item.Point] = true
		for _, neighbor := range s.moves.Neighbors(item.Point) {
			if !s.bounds.Contains(neighbor) || s.obstacles.Contains(neighbor) {
				continue
			}
			candidate := item.Cost + 1
			if known, seen := s.cost[neighbor]; seen && candidate >= known {
				continue
			}
			s.cost[neighbor] = candidate
			s.cameFrom[neighbor] = item.Point
			s.push(neighbor, candidate)
		}
		return item.Point, true
	}
	s.done = true
	return Point{}, false
}

// run expands until the goal is reached or the frontier is exhausted.
func (s *search) run() Result {
	for !s.done {
		s.advance()
	}
	return s.result()
}

func (s *search) result() Result {
	if !s.found {
		return Result{ExpandedNodes: s.expanded}
	}
	return Result{
		Path:          s.path,
		TotalCost:     float64(s.totalCost),
		ExpandedNodes: s.expanded,
		Found:         true,
	}
}

// openPoints returns the points that still have a live frontier entry.
func (s *search) openPoints() map[Point]bool {
	m := make(map[Point]bool, len(s.open))
	for _, item := range s.open {
		if item.Cost == s.cost[item.Point] {
			m[item.Point] = true
		}
	}
	return m
}
