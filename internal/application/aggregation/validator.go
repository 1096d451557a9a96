// Package aggregation implements the point-to-cell aggregation pipeline:
// validation, score normalization, cell assignment, group-by-mean
// aggregation, and boundary materialization. External capabilities (dataset
// I/O, the cell index, logging) are injected so every stage is testable in
// isolation.
package aggregation

import (
	"strings"

	"github.com/turtacn/hexmean/pkg/errors"
	"github.com/turtacn/hexmean/pkg/types/geo"
)

// ValidateDataset runs the geometry-type and score-field checks over the
// parsed dataset. Path existence and parseability are established earlier
// by the reader; together the four checks gate the pipeline, and all must
// pass before any record is touched.
//
// The geometry check is deliberately permissive: a mixed collection passes
// as long as at least one Point feature is present. Non-Point rows are
// dropped later by the normalizer so they can never reach the assigner.
func ValidateDataset(ds *geo.Dataset, scoreField string) error {
	if !ds.HasPointGeometry() {
		return errors.New(errors.CodeNoPointGeometry, "expected point data in input but none found").
			WithDetail("geometry types present: " + joinOrNone(ds.GeometryTypes()))
	}

	if !ds.HasField(scoreField) {
		return errors.Newf(errors.CodeMissingScoreField, "specified score field %q not found in input", scoreField).
			WithDetail("available fields: " + joinOrNone(ds.FieldNames()))
	}

	return nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
