package events

// EventArray is the structural contract for a batch of events held as
// four parallel, equal-length sequences (struct-of-arrays). Index i
// across the four sequences describes one event: pixel (x[i], y[i]),
// timestamp t[i] in microseconds, polarity p[i] in {+1, -1}.
//
// The contract is shape only: implementations carry no behaviour beyond
// the accessors and perform no validation of their own.
type EventArray interface {
	// Len returns the shared length of the four sequences.
	Len() int
	// X returns the pixel x coordinates.
	X() Seq[uint16]
	// Y returns the pixel y coordinates.
	Y() Seq[uint16]
	// T returns the event timestamps in microseconds.
	T() Seq[int64]
	// P returns the event polarities.
	P() Seq[int8]
}

// EventPacket is the structural contract for an immutable batch of
// events carrying sensor geometry and inclusive time bounds.
// Implementations expose event data without copying it; Packet is the
// canonical implementation.
type EventPacket interface {
	// Count returns the number of events in the packet.
	Count() int
	// Width returns the sensor width in pixels.
	Width() int
	// Height returns the sensor height in pixels.
	Height() int
	// T0 returns the inclusive lower time bound in microseconds.
	T0() int64
	// T1 returns the inclusive upper time bound in microseconds.
	T1() int64
	// Arrays returns a read-only struct-of-arrays view of the events.
	Arrays() View
	// IsEmpty reports whether the packet contains no events.
	IsEmpty() bool
}

// Arrays bundles the four raw event buffers. It is the writable
// counterpart of View: holders of an Arrays value can write through its
// slices. Packet.Raw returns one only for packets built with Mutable
// access.
type Arrays struct {
	X []uint16 // pixel x coordinates
	Y []uint16 // pixel y coordinates
	T []int64  // timestamps (microseconds)
	P []int8   // polarities (+1 or -1)
}
