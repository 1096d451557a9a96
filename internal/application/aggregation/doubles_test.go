package aggregation_test

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
)

// fakeIndex is a CellIndex double backed by a square grid: at resolution r
// the plane is cut into cells of side 1/2^r. Like the real index, the
// mapping is pure, finer resolutions refine coarser ones, and Boundary is
// the exact inverse of Cell.
type fakeIndex struct {
	cellErr     error
	boundaryErr error
}

func (f *fakeIndex) Cell(pt orb.Point, resolution int) (string, error) {
	if f.cellErr != nil {
		return "", f.cellErr
	}
	scale := math.Exp2(float64(resolution))
	x := int(math.Floor(pt.Lon() * scale))
	y := int(math.Floor(pt.Lat() * scale))
	return fmt.Sprintf("%d/%d:%d", resolution, x, y), nil
}

func (f *fakeIndex) Boundary(cell string) (orb.Ring, error) {
	if f.boundaryErr != nil {
		return nil, f.boundaryErr
	}
	var resolution, x, y int
	normalized := strings.NewReplacer("/", " ", ":", " ").Replace(cell)
	if _, err := fmt.Sscanf(normalized, "%d %d %d", &resolution, &x, &y); err != nil {
		return nil, fmt.Errorf("fake index: bad cell %q: %w", cell, err)
	}
	side := 1 / math.Exp2(float64(resolution))
	minX, minY := float64(x)*side, float64(y)*side
	return orb.Ring{
		{minX, minY},
		{minX + side, minY},
		{minX + side, minY + side},
		{minX, minY + side},
		{minX, minY},
	}, nil
}
