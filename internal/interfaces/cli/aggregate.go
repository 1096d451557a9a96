package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/turtacn/hexmean/internal/application/aggregation"
	"github.com/turtacn/hexmean/internal/infrastructure/geoio"
	"github.com/turtacn/hexmean/internal/infrastructure/index"
	"github.com/turtacn/hexmean/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/hexmean/pkg/errors"
	"github.com/turtacn/hexmean/pkg/types/geo"
)

var (
	aggregateWorkers int
	aggregatePGTable string
	aggregatePGGeom  string
	aggregatePGSRID  int
)

func newAggregateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate INPUT_FILE SCORE_FIELD OUTPUT_FILE [CELL_RESOLUTION]",
		Short: "Aggregate scored points to hexagon cells and write the cell polygons",
		Long: "Reads a point layer, averages SCORE_FIELD per H3 cell at CELL_RESOLUTION\n" +
			"(0 = largest cells, 15 = smallest; omitted means the configured default),\n" +
			"and writes one polygon feature per populated cell to OUTPUT_FILE.\n\n" +
			"INPUT_FILE is a GeoJSON file path, or a postgres:// DSN to read point\n" +
			"features from a PostGIS table.",
		Args: cobra.RangeArgs(3, 4),
		RunE: runAggregate,
	}

	cmd.Flags().IntVar(&aggregateWorkers, "workers", 0, "cell-assignment workers (0 = one per CPU)")
	cmd.Flags().StringVar(&aggregatePGTable, "pg-table", "", "PostGIS table to read when INPUT_FILE is a postgres:// DSN")
	cmd.Flags().StringVar(&aggregatePGGeom, "pg-geom", "", "geometry column of the PostGIS table")
	cmd.Flags().IntVar(&aggregatePGSRID, "pg-srid", 0, "SRID of the PostGIS geometry column (default 4326)")

	return cmd
}

func runAggregate(cmd *cobra.Command, args []string) error {
	cc, err := getCLIContext(cmd)
	if err != nil {
		return err
	}

	input, scoreField, output := args[0], args[1], args[2]

	resolution := cc.cfg.Pipeline.DefaultResolution
	if len(args) == 4 {
		resolution, err = strconv.Atoi(args[3])
		if err != nil {
			return errors.InvalidParam("CELL_RESOLUTION must be an integer").WithDetail(args[3])
		}
	}
	if !geo.ValidResolution(resolution) {
		return errors.Newf(errors.CodeInvalidResolution,
			"CELL_RESOLUTION must be between %d and %d, got %d",
			geo.MinResolution, geo.MaxResolution, resolution)
	}

	pgCfg := cc.cfg.PostGIS
	if aggregatePGTable != "" {
		pgCfg.Table = aggregatePGTable
	}
	if aggregatePGGeom != "" {
		pgCfg.GeometryColumn = aggregatePGGeom
	}
	if cmd.Flags().Changed("pg-srid") {
		pgCfg.SRID = aggregatePGSRID
	}

	workers := cc.cfg.Pipeline.Workers
	if cmd.Flags().Changed("workers") {
		workers = aggregateWorkers
	}

	pipeline := aggregation.NewPipeline(
		geoio.NewReader(input, pgCfg, cc.logger),
		geoio.NewGeoJSONWriter(cc.logger),
		index.NewH3(),
		cc.logger,
	)

	res, err := pipeline.Run(cmd.Context(), aggregation.Params{
		Input:      input,
		ScoreField: scoreField,
		Output:     output,
		Resolution: resolution,
		Workers:    workers,
	})
	if err != nil {
		cc.logger.Error("aggregation failed", logging.Err(err))
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"Aggregated %d points into %d cells at resolution %d → %s\n",
		res.ScoredPoints, res.Cells, resolution, res.OutputPath)
	return nil
}
