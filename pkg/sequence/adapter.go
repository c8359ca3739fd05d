// Package sequence defines the capability a container kind provides to be
// sliced, and the kinds shipped with this module.
package sequence

// Adapter exposes a sequence kind S with elements E to the slicing
// algorithms. At is only called with 0 <= i < Len(s). NewFrom and Empty
// return a new value of the same kind that shares no storage with s.
type Adapter[S, E any] interface {
	Len(s S) int
	At(s S, i int) E
	NewFrom(s S, positions []int) S
	Empty(s S) S
}

// Ranger is implemented by adapters that can copy a contiguous range
// [begin, finish) directly. The result must equal NewFrom over the same
// positions.
type Ranger[S any] interface {
	CopyRange(s S, begin, finish int) S
}
