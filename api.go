package gridastar

import "runtime"

// Result contains the outcome of a search. Found is false when the goal
// cannot be reached; that is an ordinary outcome, not an error.
type Result struct {
	Path          []Point
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	// Heuristic overrides DefaultHeuristic for the query's move set.
	Heuristic Heuristic
	// NumberOfWorkers bounds the goroutines SearchBatch uses.
	NumberOfWorkers int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic replaces the straight-line estimate. A heuristic that
// overestimates still produces a valid path, but not necessarily a
// shortest one.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

// WithWorkers specifies how many searches SearchBatch runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	return searchOptions
}

// Search finds a shortest path from start to goal that avoids obstacles,
// moving by unit steps of the given move set. The path includes both
// endpoints. The obstacle set is only read.
//
// start is never checked against the obstacle set, so a blocked start still
// seeds the search. A blocked goal is reachable only when it equals start.
//
// The default estimate is DefaultHeuristic(moves): plain Euclidean distance
// for Orthogonal, and Euclidean distance divided by sqrt(2) for
// OrthogonalPlusDiagonal, where a diagonal step costs 1. Plain Euclidean
// overestimates with diagonal moves and can miss the shortest path; pass
// WithHeuristic(Euclidean) to use it anyway.
func Search(
	start Point,
	goal Point,
	obstacles ObstacleSet,
	moves MoveSet,
	options ...Option,
) Result {
	return newSearch(start, goal, obstacles, moves, applyOptions(options)).run()
}

// FindPath is Search for callers that only need the path.
func FindPath(start, goal Point, obstacles ObstacleSet, moves MoveSet, options ...Option) ([]Point, bool) {
	result := Search(start, goal, obstacles, moves, options...)
	return result.Path, result.Found
}
