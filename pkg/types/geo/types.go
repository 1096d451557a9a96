// Package geo defines the plain data types passed between pipeline stages:
// the parsed input dataset, scored and cell-assigned points, and the per-cell
// aggregate records written to the output layer. No I/O lives here.
package geo

import (
	"sort"

	"github.com/paulmach/orb"
)

// Resolution bounds of the hierarchical hexagonal index
// (0 = coarsest, 15 = finest).
const (
	MinResolution = 0
	MaxResolution = 15
)

// ValidResolution reports whether res is a usable cell resolution.
func ValidResolution(res int) bool {
	return res >= MinResolution && res <= MaxResolution
}

// Feature is one record of the parsed input collection: a geometry of any
// type plus its raw attribute map. Geometry may be nil for attribute-only
// rows; such rows never survive normalization.
type Feature struct {
	Geometry   orb.Geometry
	Properties map[string]interface{}
}

// Dataset is the in-memory feature collection parsed exactly once per run
// and shared by all validation checks.
type Dataset struct {
	Features []Feature
}

// GeometryTypes returns the sorted set of geometry type names present in
// the dataset ("Point", "Polygon", ...). Features without geometry are
// ignored.
func (d *Dataset) GeometryTypes() []string {
	seen := make(map[string]struct{})
	for _, f := range d.Features {
		if f.Geometry != nil {
			seen[f.Geometry.GeoJSONType()] = struct{}{}
		}
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// HasPointGeometry reports whether at least one feature carries Point
// geometry. Mixed-geometry collections pass this check; non-Point rows are
// dropped later by the normalizer.
func (d *Dataset) HasPointGeometry() bool {
	for _, f := range d.Features {
		if _, ok := f.Geometry.(orb.Point); ok {
			return true
		}
	}
	return false
}

// HasField reports whether the named attribute appears in the dataset's
// schema. The schema is the union of all feature attribute keys, matching
// column semantics of tabular geometry formats.
func (d *Dataset) HasField(name string) bool {
	for _, f := range d.Features {
		if _, ok := f.Properties[name]; ok {
			return true
		}
	}
	return false
}

// FieldNames returns the sorted union of attribute keys across all features.
func (d *Dataset) FieldNames() []string {
	seen := make(map[string]struct{})
	for _, f := range d.Features {
		for k := range f.Properties {
			seen[k] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ScoredPoint is a point feature that survived normalization: guaranteed
// Point geometry and a non-null numeric score.
type ScoredPoint struct {
	Point orb.Point
	Score float64
}

// AssignedPoint is a scored point augmented with the identifier of the
// hexagonal cell containing it at the run resolution.
type AssignedPoint struct {
	ScoredPoint
	Cell string
}

// CellAggregate is one output record: a populated cell, the arithmetic mean
// of the scores of all points mapped to it, and the cell's polygon boundary.
// Boundary is attached by the materializer after aggregation.
type CellAggregate struct {
	Cell       string
	MeanScore  float64
	PointCount int
	Boundary   orb.Polygon
}
