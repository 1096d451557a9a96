package geoio

import (
	"context"
	"os"

	"github.com/paulmach/orb/geojson"

	"github.com/turtacn/hexmean/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/hexmean/pkg/errors"
	"github.com/turtacn/hexmean/pkg/types/geo"
)

// GeoJSONReader reads a GeoJSON FeatureCollection from a file. The file's
// extension is not checked; any file that parses as GeoJSON is accepted,
// mirroring the permissiveness of format-sniffing geometry readers.
type GeoJSONReader struct {
	logger logging.Logger
}

// NewGeoJSONReader returns a file-backed Reader.
func NewGeoJSONReader(logger logging.Logger) *GeoJSONReader {
	return &GeoJSONReader{logger: logger.Named("geoio.geojson")}
}

// Read parses the file at path into a Dataset. The file is read and parsed
// exactly once; all validation checks run over the returned in-memory
// structure.
func (r *GeoJSONReader) Read(_ context.Context, path string) (*geo.Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeInputNotFound, "input file could not be found").
				WithDetail(path)
		}
		return nil, errors.Wrap(err, errors.CodeInputNotFound, "input file is not accessible").
			WithDetail(path)
	}
	if info.IsDir() {
		return nil, errors.New(errors.CodeUnreadableGeometry, "input path is a directory").
			WithDetail(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnreadableGeometry, "failed to read input file").
			WithDetail(path)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnreadableGeometry, "failed to parse input as a geometry dataset").
			WithDetail(path)
	}

	ds := &geo.Dataset{Features: make([]geo.Feature, 0, len(fc.Features))}
	for _, f := range fc.Features {
		ds.Features = append(ds.Features, geo.Feature{
			Geometry:   f.Geometry,
			Properties: f.Properties,
		})
	}

	r.logger.Debug("parsed input file",
		logging.String("path", path),
		logging.Int("features", len(ds.Features)))

	return ds, nil
}
