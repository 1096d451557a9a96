package aggregation

import (
	"github.com/paulmach/orb"

	"github.com/turtacn/hexmean/internal/infrastructure/index"
	"github.com/turtacn/hexmean/pkg/errors"
	"github.com/turtacn/hexmean/pkg/types/geo"
)

// MaterializeBoundaries derives each populated cell's polygon boundary via
// the index's inverse mapping and attaches it to the aggregate record in
// place. Only observed cells are materialized — the global grid is never
// enumerated. Pure apart from the mutation of aggs.
func MaterializeBoundaries(idx index.CellIndex, aggs []geo.CellAggregate) error {
	for i := range aggs {
		ring, err := idx.Boundary(aggs[i].Cell)
		if err != nil {
			return errors.Wrapf(err, errors.CodeInvalidCell,
				"failed to derive boundary for cell %s", aggs[i].Cell)
		}
		aggs[i].Boundary = orb.Polygon{ring}
	}
	return nil
}
