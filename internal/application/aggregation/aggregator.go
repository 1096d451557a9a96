package aggregation

import (
	"sort"

	"github.com/turtacn/hexmean/pkg/types/geo"
)

// AggregateMean groups the assigned points by cell identifier and computes
// the arithmetic mean score per group. Mean is commutative and associative
// over the group, so input order is irrelevant; the result is sorted by
// cell identifier so repeated runs produce identical output. An empty input
// yields an empty result, not an error.
func AggregateMean(points []geo.AssignedPoint) []geo.CellAggregate {
	type group struct {
		sum   float64
		count int
	}

	groups := make(map[string]*group)
	for _, p := range points {
		g, ok := groups[p.Cell]
		if !ok {
			g = &group{}
			groups[p.Cell] = g
		}
		g.sum += p.Score
		g.count++
	}

	cells := make([]string, 0, len(groups))
	for cell := range groups {
		cells = append(cells, cell)
	}
	sort.Strings(cells)

	aggs := make([]geo.CellAggregate, 0, len(cells))
	for _, cell := range cells {
		g := groups[cell]
		aggs = append(aggs, geo.CellAggregate{
			Cell:       cell,
			MeanScore:  g.sum / float64(g.count),
			PointCount: g.count,
		})
	}
	return aggs
}
