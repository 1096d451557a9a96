package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/hexmean/pkg/errors"
)

func TestNew_FieldsAreSetCorrectly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		code    errors.ErrorCode
		message string
	}{
		{"internal error", errors.CodeInternal, "unexpected failure"},
		{"input not found", errors.CodeInputNotFound, "input file could not be found"},
		{"missing field", errors.CodeMissingScoreField, "score field not in schema"},
		{"write failure", errors.CodeWrite, "cannot persist output"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ae := errors.New(tc.code, tc.message)

			require.NotNil(t, ae)
			assert.Equal(t, tc.code, ae.Code)
			assert.Equal(t, tc.message, ae.Message)
			assert.Empty(t, ae.Detail, "Detail should be empty for bare New()")
			assert.Nil(t, ae.Cause, "Cause should be nil for bare New()")
		})
	}
}

func TestError_FormatOmitsEmptySegments(t *testing.T) {
	t.Parallel()

	bare := errors.New(errors.CodeScoreCoercion, "cannot coerce score")
	assert.Equal(t, "[SCORE_001] cannot coerce score", bare.Error())

	withDetail := bare.WithDetail(`value "abc"`)
	assert.Equal(t, `[SCORE_001] cannot coerce score: value "abc"`, withDetail.Error())

	cause := stderrors.New("strconv failed")
	full := withDetail.WithCause(cause)
	assert.Equal(t, `[SCORE_001] cannot coerce score: value "abc": strconv failed`, full.Error())
}

func TestWrap_PreservesCauseChain(t *testing.T) {
	t.Parallel()

	root := stderrors.New("unexpected end of JSON input")
	ae := errors.Wrap(root, errors.CodeUnreadableGeometry, "failed to parse input")

	require.NotNil(t, ae)
	assert.Equal(t, errors.CodeUnreadableGeometry, ae.Code)
	assert.True(t, stderrors.Is(ae, root), "errors.Is must reach the root cause")
}

func TestWrap_NilReturnsNil(t *testing.T) {
	t.Parallel()

	ae := errors.Wrap(nil, errors.CodeWrite, "ignored")
	assert.Nil(t, ae)
}

func TestIsCode(t *testing.T) {
	t.Parallel()

	inner := errors.New(errors.CodeInputNotFound, "missing")
	outer := errors.Wrap(inner, errors.CodeInternal, "pipeline aborted")

	assert.True(t, errors.IsCode(outer, errors.CodeInternal))
	assert.True(t, errors.IsCode(outer, errors.CodeInputNotFound), "IsCode must traverse the chain")
	assert.False(t, errors.IsCode(outer, errors.CodeWrite))
	assert.False(t, errors.IsCode(nil, errors.CodeWrite))
}

func TestIsCode_NonAppError(t *testing.T) {
	t.Parallel()

	assert.False(t, errors.IsCode(stderrors.New("plain"), errors.CodeInternal))
}

func TestGetCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, errors.ErrorCode(""), errors.GetCode(nil))
	assert.Equal(t, errors.CodeWrite, errors.GetCode(errors.New(errors.CodeWrite, "x")))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(stderrors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", errors.New(errors.CodeInvalidResolution, "res 99"))
	assert.Equal(t, errors.CodeInvalidResolution, errors.GetCode(wrapped))
}

func TestWithDetail_DoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	base := errors.New(errors.CodeNoPointGeometry, "no point features")
	clone := base.WithDetail("geometry types: Polygon")

	assert.Empty(t, base.Detail)
	assert.Equal(t, "geometry types: Polygon", clone.Detail)

	var nilErr *errors.AppError
	assert.Nil(t, nilErr.WithDetail("safe on nil"))
}

func TestNewf_FormatsMessage(t *testing.T) {
	t.Parallel()

	ae := errors.Newf(errors.CodeInvalidResolution, "resolution must be between 0 and 15, got %d", 42)
	assert.Equal(t, "[INDEX_001] resolution must be between 0 and 15, got 42", ae.Error())
}
