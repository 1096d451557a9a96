package aggregation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/hexmean/internal/infrastructure/geoio"
	"github.com/turtacn/hexmean/internal/infrastructure/index"
	"github.com/turtacn/hexmean/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/hexmean/pkg/errors"
	"github.com/turtacn/hexmean/pkg/types/geo"
)

// Params describes one aggregation run.
type Params struct {
	// Input is the source reference: a geometry file path or a PostGIS DSN.
	Input string

	// ScoreField names the attribute holding the per-point score.
	ScoreField string

	// Output is the destination file path; format is inferred from its
	// extension.
	Output string

	// Resolution is the cell resolution to aggregate to, within [0, 15].
	Resolution int

	// Workers bounds the cell-assignment pool; zero means one per CPU.
	Workers int
}

// Result summarises a completed run.
type Result struct {
	RunID         string
	InputFeatures int
	ScoredPoints  int
	Cells         int
	OutputPath    string
	Elapsed       time.Duration
}

// Pipeline wires the stages to their external capabilities. All failures
// are terminal: a run either completes every stage and leaves exactly one
// output file, or aborts with a coded error and leaves none.
type Pipeline struct {
	reader geoio.Reader
	writer geoio.Writer
	index  index.CellIndex
	logger logging.Logger
}

// NewPipeline constructs a Pipeline with injected capabilities.
func NewPipeline(reader geoio.Reader, writer geoio.Writer, idx index.CellIndex, logger logging.Logger) *Pipeline {
	return &Pipeline{
		reader: reader,
		writer: writer,
		index:  idx,
		logger: logger.Named("aggregation"),
	}
}

// Run executes the pipeline in one forward pass:
// read → validate → normalize → assign → aggregate → materialize → write.
func (p *Pipeline) Run(ctx context.Context, params Params) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := p.logger.With(logging.String("run_id", runID))

	if params.ScoreField == "" {
		return nil, errors.InvalidParam("score field must not be empty")
	}
	if !geo.ValidResolution(params.Resolution) {
		return nil, errors.Newf(errors.CodeInvalidResolution,
			"cell resolution must be between %d and %d, got %d",
			geo.MinResolution, geo.MaxResolution, params.Resolution)
	}

	log.Info("starting aggregation run",
		logging.String("input", params.Input),
		logging.String("score_field", params.ScoreField),
		logging.String("output", params.Output),
		logging.Int("resolution", params.Resolution))

	ds, err := p.reader.Read(ctx, params.Input)
	if err != nil {
		return nil, err
	}

	if err := ValidateDataset(ds, params.ScoreField); err != nil {
		return nil, err
	}

	points, err := NormalizeScores(ds, params.ScoreField)
	if err != nil {
		return nil, err
	}
	log.Debug("normalized scores",
		logging.Int("input_features", len(ds.Features)),
		logging.Int("scored_points", len(points)))
	if len(points) == 0 {
		log.Warn("no scored point features survived normalization; output will be empty")
	}

	assigned, err := AssignCells(ctx, p.index, points, params.Resolution, params.Workers)
	if err != nil {
		return nil, err
	}

	aggs := AggregateMean(assigned)
	log.Debug("aggregated points to cells", logging.Int("cells", len(aggs)))

	if err := MaterializeBoundaries(p.index, aggs); err != nil {
		return nil, err
	}

	if err := p.writer.Write(ctx, params.Output, aggs, params.ScoreField); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:         runID,
		InputFeatures: len(ds.Features),
		ScoredPoints:  len(points),
		Cells:         len(aggs),
		OutputPath:    params.Output,
		Elapsed:       time.Since(start),
	}

	log.Info("aggregation run complete",
		logging.Int("input_features", res.InputFeatures),
		logging.Int("scored_points", res.ScoredPoints),
		logging.Int("cells", res.Cells),
		logging.Duration("elapsed", res.Elapsed))

	return res, nil
}
