package index

import (
	"github.com/paulmach/orb"
	h3 "github.com/uber/h3-go/v4"

	"github.com/turtacn/hexmean/pkg/errors"
	"github.com/turtacn/hexmean/pkg/types/geo"
)

// H3 implements CellIndex on Uber's H3 hierarchical hexagonal grid.
// The zero value is usable; NewH3 exists for symmetry with other
// infrastructure constructors.
type H3 struct{}

// NewH3 returns an H3-backed CellIndex.
func NewH3() *H3 {
	return &H3{}
}

// Cell returns the H3 cell index containing pt at the given resolution,
// encoded as the canonical hexadecimal string.
func (H3) Cell(pt orb.Point, resolution int) (string, error) {
	if !geo.ValidResolution(resolution) {
		return "", errors.Newf(errors.CodeInvalidResolution,
			"resolution must be between %d and %d, got %d",
			geo.MinResolution, geo.MaxResolution, resolution)
	}

	cell := h3.LatLngToCell(h3.NewLatLng(pt.Lat(), pt.Lon()), resolution)
	if !cell.IsValid() {
		return "", errors.Newf(errors.CodeInvalidCell,
			"no valid cell for point (%f, %f) at resolution %d",
			pt.Lon(), pt.Lat(), resolution)
	}
	return cell.String(), nil
}

// Boundary decodes an H3 cell identifier and returns its boundary as a
// closed ring (first vertex repeated last) in lon/lat order.
func (H3) Boundary(cellID string) (orb.Ring, error) {
	cell := h3.Cell(h3.IndexFromString(cellID))
	if !cell.IsValid() {
		return nil, errors.New(errors.CodeInvalidCell, "invalid cell identifier").
			WithDetail(cellID)
	}

	boundary := h3.CellToBoundary(cell)
	if len(boundary) == 0 {
		return nil, errors.New(errors.CodeInvalidCell, "cell has no boundary").
			WithDetail(cellID)
	}
	ring := make(orb.Ring, 0, len(boundary)+1)
	for _, v := range boundary {
		ring = append(ring, orb.Point{v.Lng, v.Lat})
	}
	ring = append(ring, ring[0])
	return ring, nil
}
