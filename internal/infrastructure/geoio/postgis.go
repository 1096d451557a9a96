package geoio

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/paulmach/orb/geojson"

	"github.com/turtacn/hexmean/internal/config"
	"github.com/turtacn/hexmean/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/hexmean/pkg/errors"
	"github.com/turtacn/hexmean/pkg/types/geo"
)

// PostGISReader loads point features from a PostGIS table. Geometry is
// fetched through ST_AsGeoJSON so that rows enter the same Dataset seam as
// file input and every validation check applies unchanged. Tables in a
// reference system other than EPSG:4326 are transformed on read so that
// coordinates always arrive in lon/lat, matching file input.
type PostGISReader struct {
	cfg    config.PostGISConfig
	logger logging.Logger
}

// NewPostGISReader returns a database-backed Reader.
func NewPostGISReader(cfg config.PostGISConfig, logger logging.Logger) *PostGISReader {
	return &PostGISReader{cfg: cfg, logger: logger.Named("geoio.postgis")}
}

// Read connects to the DSN, selects the geometry column as GeoJSON plus all
// remaining columns as attributes, and assembles the Dataset. The
// connection lives only for the duration of this call.
func (r *PostGISReader) Read(ctx context.Context, dsn string) (*geo.Dataset, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.QueryTimeout)
	defer cancel()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInputNotFound, "input database is not reachable")
	}
	defer conn.Close(ctx)

	geomCol := pgx.Identifier{r.cfg.GeometryColumn}.Sanitize()
	geomExpr := geomCol
	if r.cfg.SRID != 4326 {
		geomExpr = fmt.Sprintf("ST_Transform(ST_SetSRID(%s, %d), 4326)", geomCol, r.cfg.SRID)
	}

	// to_jsonb(t.*) - geometry column yields the attribute map without the
	// raw geometry blob.
	query := fmt.Sprintf(
		`SELECT ST_AsGeoJSON(%s), to_jsonb(t.*) - $1::text FROM %s AS t`,
		geomExpr,
		pgx.Identifier{r.cfg.Table}.Sanitize(),
	)

	rows, err := conn.Query(ctx, query, r.cfg.GeometryColumn)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnreadableGeometry, "failed to query input table").
			WithDetail(r.cfg.Table)
	}
	defer rows.Close()

	ds := &geo.Dataset{}
	for rows.Next() {
		var geomJSON *string
		var propsJSON []byte
		if err := rows.Scan(&geomJSON, &propsJSON); err != nil {
			return nil, errors.Wrap(err, errors.CodeUnreadableGeometry, "failed to scan input row")
		}

		feature := geo.Feature{}
		if geomJSON != nil {
			g, err := geojson.UnmarshalGeometry([]byte(*geomJSON))
			if err != nil {
				return nil, errors.Wrap(err, errors.CodeUnreadableGeometry, "failed to decode row geometry")
			}
			feature.Geometry = g.Geometry()
		}
		if len(propsJSON) > 0 {
			if err := json.Unmarshal(propsJSON, &feature.Properties); err != nil {
				return nil, errors.Wrap(err, errors.CodeUnreadableGeometry, "failed to decode row attributes")
			}
		}

		ds.Features = append(ds.Features, feature)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeUnreadableGeometry, "failed to read input table").
			WithDetail(r.cfg.Table)
	}

	r.logger.Debug("loaded input table",
		logging.String("table", r.cfg.Table),
		logging.Int("features", len(ds.Features)))

	return ds, nil
}
