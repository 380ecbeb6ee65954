package events

import "fmt"

// Element enumerates the element types event sequences are built from:
// pixel coordinates, microsecond timestamps, and polarities.
type Element interface {
	~uint16 | ~int64 | ~int8
}

// Seq is a read-only, zero-copy view over a caller-owned slice. It is
// the borrowing counterpart of a plain []T: holders can read elements
// but cannot write through it, grow it, or reach the backing array.
//
// A Seq remains valid only as long as the slice it was built from, and
// it observes any writes the owner makes through their own reference.
type Seq[T Element] struct {
	s []T
}

// SeqOf wraps s in a read-only view without copying.
func SeqOf[T Element](s []T) Seq[T] {
	return Seq[T]{s: s}
}

// Len returns the number of elements in the view.
func (q Seq[T]) Len() int { return len(q.s) }

// At returns the element at index i. It panics if i is out of range,
// matching slice indexing.
func (q Seq[T]) At(i int) T { return q.s[i] }

// Slice returns the sub-view covering q[i:j]. The result shares the
// backing array with q. It panics unless 0 <= i <= j <= q.Len(): j is
// bounded by the view's length, never by spare capacity of the backing
// array, so a sub-view cannot expose elements q itself does not.
func (q Seq[T]) Slice(i, j int) Seq[T] {
	if i < 0 || j < i || j > len(q.s) {
		panic(fmt.Sprintf("events: Seq.Slice bounds out of range [%d:%d] with length %d", i, j, len(q.s)))
	}
	return Seq[T]{s: q.s[i:j]}
}

// Copy copies up to len(dst) elements into dst and returns the number
// copied.
func (q Seq[T]) Copy(dst []T) int { return copy(dst, q.s) }

// Append appends the view's elements to dst and returns the extended
// slice. This is the sanctioned way to obtain a writable copy of a
// sequence.
func (q Seq[T]) Append(dst []T) []T { return append(dst, q.s...) }

// View is a read-only struct-of-arrays over four parallel event
// sequences. It implements EventArray and shares memory with the
// buffers it was built over.
type View struct {
	x Seq[uint16]
	y Seq[uint16]
	t Seq[int64]
	p Seq[int8]
}

// NewView wraps four parallel buffers in a read-only view without
// copying. NewView performs no validation; the caller is responsible
// for the parallel-length invariant. FromArrays is the validated path.
func NewView(x []uint16, y []uint16, t []int64, p []int8) View {
	return View{x: SeqOf(x), y: SeqOf(y), t: SeqOf(t), p: SeqOf(p)}
}

// Len returns the event count, derived from the timestamp sequence.
func (v View) Len() int { return v.t.Len() }

// X returns the pixel x coordinates.
func (v View) X() Seq[uint16] { return v.x }

// Y returns the pixel y coordinates.
func (v View) Y() Seq[uint16] { return v.y }

// T returns the event timestamps in microseconds.
func (v View) T() Seq[int64] { return v.t }

// P returns the event polarities.
func (v View) P() Seq[int8] { return v.p }

var _ EventArray = View{}
