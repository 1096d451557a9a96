package geoio

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb/geojson"

	"github.com/turtacn/hexmean/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/hexmean/pkg/errors"
	"github.com/turtacn/hexmean/pkg/types/geo"
)

// Output property written alongside the caller's score field.
const (
	PropertyCellID     = "h3_index"
	PropertyPointCount = "point_count"
)

// GeoJSONWriter persists the aggregated cell layer as a GeoJSON
// FeatureCollection: one polygon feature per populated cell with the cell
// identifier, the mean score under the input score-field name, and the
// contributing point count.
type GeoJSONWriter struct {
	logger logging.Logger
}

// NewGeoJSONWriter returns a file-backed Writer.
func NewGeoJSONWriter(logger logging.Logger) *GeoJSONWriter {
	return &GeoJSONWriter{logger: logger.Named("geoio.writer")}
}

// Write marshals the aggregates and writes them atomically: the collection
// is staged to a temp file in the destination directory and renamed into
// place, so a failed run never leaves a partial output file.
func (w *GeoJSONWriter) Write(_ context.Context, path string, aggs []geo.CellAggregate, scoreField string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
	default:
		return errors.Newf(errors.CodeWrite, "unsupported output format %q (supported: .geojson, .json)",
			filepath.Ext(path))
	}

	fc := geojson.NewFeatureCollection()
	for _, a := range aggs {
		f := geojson.NewFeature(a.Boundary)
		f.Properties[PropertyCellID] = a.Cell
		f.Properties[scoreField] = a.MeanScore
		f.Properties[PropertyPointCount] = a.PointCount
		fc.Append(f)
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return errors.Wrap(err, errors.CodeWrite, "failed to encode output collection")
	}
	data = append(data, '\n')

	if err := writeAtomic(path, data); err != nil {
		return errors.Wrap(err, errors.CodeWrite, "failed to persist output").WithDetail(path)
	}

	w.logger.Debug("wrote output file",
		logging.String("path", path),
		logging.Int("features", len(aggs)))

	return nil
}

// writeAtomic stages data to a temp file next to path and renames it into
// place. The temp file lives in the destination directory so the rename
// never crosses filesystems.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".hexmean-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
