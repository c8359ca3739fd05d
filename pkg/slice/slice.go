// Package slice extracts contiguous or strided subranges of any sequence
// kind, addressed by possibly negative indices.
//
// One convention applies to every kind:
//
//   - a negative index counts back from the length;
//   - begin is floored at 0 and finish capped at the length, so ranges that
//     overshoot either end are truncated rather than rejected;
//   - a resolved finish before the resolved begin yields an empty result;
//   - a negative stride walks the range backwards from its last position;
//   - a zero stride fails with ErrZeroStride.
//
// Results are new values of the source's kind and never share storage with
// the source. The source must not be mutated while a call is in progress.
package slice

import (
	"github.com/henderiw/slicer/pkg/index"
	"github.com/henderiw/slicer/pkg/sequence"
	"github.com/henderiw/slicer/pkg/stride"
)

// Element returns the element at raw index i of s. Unlike range endpoints,
// i is never clamped: a position outside [0, Len) fails with an
// *IndexError wrapping ErrIndexOutOfRange.
func Element[S, E any](a sequence.Adapter[S, E], s S, i int) (E, error) {
	length := a.Len(s)
	pos := index.Resolve(i, length)
	if pos < 0 || pos >= length {
		var e E
		return e, &IndexError{Index: i, Position: pos, Length: length}
	}
	return a.At(s, pos), nil
}

// Range returns the elements of s in [begin, finish), equivalent to
// Strided with a stride of 1.
func Range[S, E any](a sequence.Adapter[S, E], s S, begin int, finish index.Bound) S {
	r, _ := Strided(a, s, begin, finish, 1)
	return r
}

// Strided returns every step-th element of s in [begin, finish). A negative
// step starts at the last position of the range and walks down.
func Strided[S, E any](a sequence.Adapter[S, E], s S, begin int, finish index.Bound, step int) (S, error) {
	r, err := resolve(a.Len(s), begin, finish, step)
	if err != nil {
		var zero S
		return zero, err
	}
	return extract(a, s, r, step), nil
}

// resolve rejects a zero stride, then resolves [begin, finish) against
// length.
func resolve(length, begin int, finish index.Bound, step int) (index.Range, error) {
	if err := stride.Validate(step); err != nil {
		return index.Range{}, err
	}
	return index.ResolveRange(begin, finish, length), nil
}

// extract materializes a resolved range. step must be non-zero.
func extract[S, E any](a sequence.Adapter[S, E], s S, r index.Range, step int) S {
	if r.Finish < r.Begin {
		return a.Empty(s)
	}
	if ranger, ok := a.(sequence.Ranger[S]); ok && step == 1 {
		return ranger.CopyRange(s, r.Begin, r.Finish)
	}
	positions, _ := stride.Positions(r, step)
	return a.NewFrom(s, positions)
}
