package events

import "fmt"

// validateArrays enforces the construction invariants in order,
// returning the first violation wrapped around its sentinel. t0 and t1
// are the already-resolved bounds.
func validateArrays(x []uint16, y []uint16, t []int64, p []int8, width, height int, t0, t1 int64) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrGeometry, width, height)
	}

	n := len(x)
	if len(y) != n || len(t) != n || len(p) != n {
		return fmt.Errorf("%w: x=%d y=%d t=%d p=%d",
			ErrLengthMismatch, len(x), len(y), len(t), len(p))
	}

	for i, v := range p {
		if v != 1 && v != -1 {
			return fmt.Errorf("%w: p[%d]=%d", ErrPolarity, i, v)
		}
	}

	for i := 1; i < len(t); i++ {
		if t[i] < t[i-1] {
			return fmt.Errorf("%w: t[%d]=%d < t[%d]=%d",
				ErrTimestampOrder, i, t[i], i-1, t[i-1])
		}
	}

	// Derived bounds cannot invert once t is monotone; this catches
	// explicit overrides that do.
	if t0 > t1 {
		return fmt.Errorf("%w: t0=%d t1=%d", ErrTimeBounds, t0, t1)
	}

	return nil
}
