package gridastar

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Query is one independent search request for SearchBatch.
type Query struct {
	Start     Point
	Goal      Point
	Obstacles ObstacleSet
	Moves     MoveSet
}

// SearchBatch runs every query and returns results in query order. Up to
// Options.NumberOfWorkers searches run at once. Searches are not
// interrupted once started; the context is checked before each one, and
// its error is returned if it was cancelled.
//
// Queries may share an obstacle set as long as nothing writes to it while
// the batch runs.
func SearchBatch(ctx context.Context, queries []Query, options ...Option) ([]Result, error) {
	searchOptions := applyOptions(options)
	results := make([]Result, len(queries))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, query := range queries {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			results[i] = newSearch(query.Start, query.Goal, query.Obstacles, query.Moves, searchOptions).run()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
