package aggregation

import (
	"context"
	"runtime"
	"sync"

	"github.com/turtacn/hexmean/internal/infrastructure/index"
	"github.com/turtacn/hexmean/pkg/errors"
	"github.com/turtacn/hexmean/pkg/types/geo"
)

// AssignCells maps every scored point to the identifier of its containing
// cell at the given resolution. The per-point mapping is pure and
// independent, so the work is spread across a bounded worker pool; output
// order matches input order regardless of scheduling.
func AssignCells(ctx context.Context, idx index.CellIndex, points []geo.ScoredPoint, resolution, workers int) ([]geo.AssignedPoint, error) {
	if !geo.ValidResolution(resolution) {
		return nil, errors.Newf(errors.CodeInvalidResolution,
			"cell resolution must be between %d and %d, got %d",
			geo.MinResolution, geo.MaxResolution, resolution)
	}

	out := make([]geo.AssignedPoint, len(points))
	if len(points) == 0 {
		return out, nil
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(points) {
		workers = len(points)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				cell, err := idx.Cell(points[i].Point, resolution)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				out[i] = geo.AssignedPoint{ScoredPoint: points[i], Cell: cell}
			}
		}()
	}

feed:
	for i := range points {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "cell assignment interrupted")
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
