// Package geoio loads point-feature datasets and persists aggregated
// polygon layers. It is the pipeline's only contact with files and
// databases; everything behind the Reader and Writer seams is
// substitutable in tests.
package geoio

import (
	"context"
	"strings"

	"github.com/turtacn/hexmean/internal/config"
	"github.com/turtacn/hexmean/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/hexmean/pkg/types/geo"
)

// Reader loads a feature dataset from a source reference (file path or
// database DSN). Implementations return coded errors: CodeInputNotFound
// when the source does not exist or is unreachable, CodeUnreadableGeometry
// when it exists but cannot be parsed as a geometry dataset.
type Reader interface {
	Read(ctx context.Context, source string) (*geo.Dataset, error)
}

// Writer persists the aggregated cell layer to a destination path, with the
// format inferred from the path's extension. Failures carry CodeWrite.
type Writer interface {
	Write(ctx context.Context, path string, aggs []geo.CellAggregate, scoreField string) error
}

// IsDatabaseSource reports whether source is a PostGIS DSN rather than a
// file path.
func IsDatabaseSource(source string) bool {
	return strings.HasPrefix(source, "postgres://") ||
		strings.HasPrefix(source, "postgresql://")
}

// NewReader selects the reader implementation for the given source:
// a PostGIS reader for postgres:// DSNs, the GeoJSON file reader otherwise.
func NewReader(source string, pg config.PostGISConfig, logger logging.Logger) Reader {
	if IsDatabaseSource(source) {
		return NewPostGISReader(pg, logger)
	}
	return NewGeoJSONReader(logger)
}
