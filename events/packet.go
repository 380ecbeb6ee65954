package events

import "fmt"

// PacketConfig configures FromArrays. Width and Height are required;
// the remaining fields opt individual behaviours in or out.
type PacketConfig struct {
	// Width and Height give the sensor geometry in pixels. Geometry is
	// descriptive metadata: it is checked for positivity but never
	// against the coordinate buffers, so region-of-interest crops and
	// sub-sampled streams stay representable.
	Width  int
	Height int

	// T0 and T1 optionally pin the packet's inclusive time bounds in
	// microseconds. A nil bound derives from the timestamp buffer (see
	// FromArrays). Explicit bounds are metadata like geometry: only
	// their mutual order is enforced, not containment of t.
	T0 *int64
	T1 *int64

	// SkipValidation bypasses every construction-time check. The
	// caller asserts the buffers already satisfy the packet invariants,
	// typically because they came from an already-validated packet. A
	// performance escape hatch, never the default.
	SkipValidation bool

	// Mutable keeps the borrowed buffers reachable through Packet.Raw,
	// trusting the caller not to write through them while the packet is
	// shared.
	Mutable bool
}

// Packet is an immutable batch of events plus sensor geometry and
// inclusive time bounds. It is a value type in the manner of time.Time:
// copy it freely, compare metadata through accessors, and share it
// across goroutines without locking.
//
// A Packet borrows its buffers from the caller rather than copying
// them. It must not outlive the backing memory, and its immutability
// holds only as long as the owner does not write through their own
// references to the buffers. Construct packets with FromArrays; the
// zero Packet is only ever returned alongside a non-nil error.
type Packet struct {
	x []uint16
	y []uint16
	t []int64
	p []int8

	width  int
	height int
	t0     int64
	t1     int64

	mutable bool
}

// FromArrays builds a Packet over four caller-owned, equal-length event
// buffers without copying them.
//
// Unless cfg.SkipValidation is set, construction fails fast on the
// first violated invariant, in order: positive geometry (ErrGeometry),
// equal buffer lengths (ErrLengthMismatch), polarities in {+1, -1}
// (ErrPolarity), monotonically non-decreasing timestamps
// (ErrTimestampOrder), and resolved bounds with t0 <= t1
// (ErrTimeBounds). Dimensionality and element widths are carried by the
// slice types themselves and need no runtime check.
//
// Time bounds resolve as follows. With events present, a nil cfg.T0 or
// cfg.T1 derives from the first or last timestamp. With no events, both
// bounds default to 0; if exactly one is supplied, the other collapses
// onto it. Every validated packet therefore satisfies t0 <= t1.
//
// FromArrays reads the buffers without synchronisation: callers must
// not mutate them while construction runs.
//
// On error the zero Packet is returned: no partially constructed packet
// is ever observable.
func FromArrays(x []uint16, y []uint16, t []int64, p []int8, cfg PacketConfig) (Packet, error) {
	t0, t1 := resolveBounds(t, cfg.T0, cfg.T1)

	if !cfg.SkipValidation {
		if err := validateArrays(x, y, t, p, cfg.Width, cfg.Height, t0, t1); err != nil {
			return Packet{}, err
		}
	}

	return Packet{
		x:       x,
		y:       y,
		t:       t,
		p:       p,
		width:   cfg.Width,
		height:  cfg.Height,
		t0:      t0,
		t1:      t1,
		mutable: cfg.Mutable,
	}, nil
}

// resolveBounds derives the effective inclusive bounds from the
// timestamp buffer and any explicit overrides.
func resolveBounds(t []int64, explicit0, explicit1 *int64) (int64, int64) {
	if len(t) > 0 {
		t0 := t[0]
		t1 := t[len(t)-1]
		if explicit0 != nil {
			t0 = *explicit0
		}
		if explicit1 != nil {
			t1 = *explicit1
		}
		return t0, t1
	}

	// Empty packet: default both bounds to zero, or collapse the
	// missing side onto the supplied one.
	switch {
	case explicit0 != nil && explicit1 != nil:
		return *explicit0, *explicit1
	case explicit0 != nil:
		return *explicit0, *explicit0
	case explicit1 != nil:
		return *explicit1, *explicit1
	default:
		return 0, 0
	}
}

// Count returns the number of events, derived from the buffer length.
func (pk Packet) Count() int { return len(pk.t) }

// Width returns the sensor width in pixels.
func (pk Packet) Width() int { return pk.width }

// Height returns the sensor height in pixels.
func (pk Packet) Height() int { return pk.height }

// T0 returns the inclusive lower time bound in microseconds.
func (pk Packet) T0() int64 { return pk.t0 }

// T1 returns the inclusive upper time bound in microseconds.
func (pk Packet) T1() int64 { return pk.t1 }

// Duration returns t1 - t0 in microseconds.
func (pk Packet) Duration() int64 { return pk.t1 - pk.t0 }

// IsEmpty reports whether the packet contains no events.
func (pk Packet) IsEmpty() bool { return len(pk.t) == 0 }

// Arrays returns the read-only struct-of-arrays view of the packet's
// events. The view shares memory with the construction buffers; no copy
// is made.
func (pk Packet) Arrays() View {
	return View{x: SeqOf(pk.x), y: SeqOf(pk.y), t: SeqOf(pk.t), p: SeqOf(pk.p)}
}

// Raw returns the borrowed buffers when the packet was built with
// Mutable access, for callers that need to hand storage back to a
// decoder pool or edit in place before sharing. For read-only packets
// (the default) it returns the zero Arrays and false.
func (pk Packet) Raw() (Arrays, bool) {
	if !pk.mutable {
		return Arrays{}, false
	}
	return Arrays{X: pk.x, Y: pk.y, T: pk.t, P: pk.p}, true
}

// String renders the packet metadata for logs and debugging. The format
// is not a stable interface.
func (pk Packet) String() string {
	return fmt.Sprintf("Packet(count=%d, t0=%d, t1=%d, width=%d, height=%d)",
		len(pk.t), pk.t0, pk.t1, pk.width, pk.height)
}

var _ EventPacket = Packet{}
