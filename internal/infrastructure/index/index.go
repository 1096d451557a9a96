// Package index converts between geographic coordinates and hierarchical
// hexagonal cells. The CellIndex interface is the seam through which the
// aggregation pipeline reaches the spatial-indexing capability, so tests can
// substitute a double for the real H3 implementation.
package index

import (
	"github.com/paulmach/orb"
)

// CellIndex maps points to cell identifiers and cell identifiers back to
// their polygon boundaries.
//
// Identifiers are opaque strings: deterministic for identical
// (resolution, containing cell) pairs, and decodable by Boundary on the
// same index that produced them.
type CellIndex interface {
	// Cell returns the identifier of the cell containing pt at the given
	// resolution. The mapping is pure and total over valid coordinates.
	Cell(pt orb.Point, resolution int) (string, error)

	// Boundary returns the closed ring of boundary vertices for the cell,
	// in the same coordinate reference system as the input points.
	Boundary(cell string) (orb.Ring, error)
}
