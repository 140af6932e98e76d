package polyclip

import "errors"

var (
	// ErrInvalidClipType is returned when a ClipType value is out of range.
	ErrInvalidClipType = errors.New("polyclip: invalid clip type")

	// ErrInvalidFillRule is returned when a FillRule value is out of range.
	ErrInvalidFillRule = errors.New("polyclip: invalid fill rule")

	// ErrInvalidInput reports invalid input parameters. Its one return
	// site is SegmentIntersection's crossing-point step, on a zero
	// denominator; no clipping entry point returns it.
	ErrInvalidInput = errors.New("polyclip: invalid input parameters")

	// ErrInvalidRectangle is returned by RectClip64/RectClipLines64 when
	// the clip rectangle does not have exactly four points.
	ErrInvalidRectangle = errors.New("polyclip: invalid rectangle: must have exactly 4 points")

	// ErrInvalidOptions names out-of-range configuration. No function in
	// this module returns it.
	ErrInvalidOptions = errors.New("polyclip: invalid options")

	// ErrClipperExecution reports an internal invariant violation
	// discovered during Execute (for example a maxima vertex whose
	// maxima pair could not be found). Execute recovers any such panic
	// at its boundary and returns this error with empty output rather
	// than let the violation escape or silently produce a wrong answer.
	ErrClipperExecution = errors.New("polyclip: clipping execution failed")
)
