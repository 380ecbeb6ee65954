package events

import "errors"

// Construction errors returned by FromArrays. Each failure wraps one of
// these sentinels with the offending values; match with errors.Is.
var (
	// ErrGeometry indicates a non-positive sensor width or height.
	ErrGeometry = errors.New("sensor width and height must be positive")

	// ErrLengthMismatch indicates the x, y, t, p buffers do not share a
	// single length.
	ErrLengthMismatch = errors.New("x, y, t, p must have equal lengths")

	// ErrPolarity indicates a polarity value outside {+1, -1}.
	ErrPolarity = errors.New("polarity must be +1 or -1")

	// ErrTimestampOrder indicates timestamps that decrease between
	// consecutive events.
	ErrTimestampOrder = errors.New("timestamps must be monotonically non-decreasing")

	// ErrTimeBounds indicates resolved time bounds with t0 > t1.
	ErrTimeBounds = errors.New("t0 must not exceed t1")
)
