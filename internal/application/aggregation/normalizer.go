package aggregation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/turtacn/hexmean/pkg/errors"
	"github.com/turtacn/hexmean/pkg/types/geo"
)

// NormalizeScores reduces the dataset to the records that can contribute to
// aggregation: Point geometry with a non-null score. Score values that are
// not already numeric are coerced — strings are parsed as decimal numbers,
// anything else fails with CodeScoreCoercion. Records may be dropped here
// but never added; every returned point carries a usable float64 score.
func NormalizeScores(ds *geo.Dataset, scoreField string) ([]geo.ScoredPoint, error) {
	out := make([]geo.ScoredPoint, 0, len(ds.Features))
	for _, f := range ds.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}

		raw, ok := f.Properties[scoreField]
		if !ok || raw == nil {
			continue
		}

		score, err := coerceScore(raw)
		if err != nil {
			return nil, err
		}
		// A coerced NaN carries no information; treat it like a missing
		// score rather than letting it poison every mean it touches.
		if math.IsNaN(score) {
			continue
		}

		out = append(out, geo.ScoredPoint{Point: pt, Score: score})
	}
	return out, nil
}

// coerceScore converts a raw attribute value to float64. The numeric cases
// cover what JSON decoding and database drivers actually produce.
func coerceScore(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, errors.Wrap(err, errors.CodeScoreCoercion, "could not convert score field to numeric").
				WithDetail(fmt.Sprintf("value %q", v.String()))
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, errors.Wrap(err, errors.CodeScoreCoercion, "could not convert score field to numeric").
				WithDetail(fmt.Sprintf("value %q", v))
		}
		return f, nil
	default:
		return 0, errors.New(errors.CodeScoreCoercion, "could not convert score field to numeric").
			WithDetail(fmt.Sprintf("value %v of unsupported type %T", raw, raw))
	}
}
