package errors

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes
const (
	ErrCodeInternal      ErrorCode = "COMMON_001"
	ErrCodeBadRequest    ErrorCode = "COMMON_002"
	ErrCodeNotFound      ErrorCode = "COMMON_003"
	ErrCodeSerialization ErrorCode = "COMMON_004"
)

// Input validation error codes.
//
// The four input checks are independent; each failure carries the code of
// the first check that did not pass.
const (
	// ErrCodeInputNotFound — the input path does not exist or the input
	// source is unreachable.
	ErrCodeInputNotFound ErrorCode = "INPUT_001"

	// ErrCodeUnreadableGeometry — the input exists but cannot be parsed as a
	// geometry dataset. The underlying parse error is preserved as Cause.
	ErrCodeUnreadableGeometry ErrorCode = "INPUT_002"

	// ErrCodeNoPointGeometry — the parsed collection contains no Point
	// geometry at all. Mixed collections with at least one Point pass.
	ErrCodeNoPointGeometry ErrorCode = "INPUT_003"

	// ErrCodeMissingScoreField — the named score field is absent from the
	// collection's attribute schema.
	ErrCodeMissingScoreField ErrorCode = "INPUT_004"
)

// Score normalization error codes
const (
	// ErrCodeScoreCoercion — a non-null score value could not be coerced to
	// a number.
	ErrCodeScoreCoercion ErrorCode = "SCORE_001"
)

// Cell index error codes
const (
	// ErrCodeInvalidResolution — the requested cell resolution is outside
	// [0, 15].
	ErrCodeInvalidResolution ErrorCode = "INDEX_001"

	// ErrCodeInvalidCell — a cell identifier could not be decoded by the
	// index, so no boundary can be derived for it.
	ErrCodeInvalidCell ErrorCode = "INDEX_002"
)

// Output error codes
const (
	// ErrCodeWrite — the aggregated layer could not be persisted
	// (unsupported format, permission failure, disk error).
	ErrCodeWrite ErrorCode = "OUTPUT_001"
)

// Shorter aliases used at call sites throughout the pipeline.
const (
	CodeInternal           = ErrCodeInternal
	CodeInvalidParam       = ErrCodeBadRequest
	CodeInputNotFound      = ErrCodeInputNotFound
	CodeUnreadableGeometry = ErrCodeUnreadableGeometry
	CodeNoPointGeometry    = ErrCodeNoPointGeometry
	CodeMissingScoreField  = ErrCodeMissingScoreField
	CodeScoreCoercion      = ErrCodeScoreCoercion
	CodeInvalidResolution  = ErrCodeInvalidResolution
	CodeInvalidCell        = ErrCodeInvalidCell
	CodeWrite              = ErrCodeWrite
)
