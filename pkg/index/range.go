package index

import "fmt"

// Range is a resolved half-open position interval [Begin, Finish).
// Finish < Begin denotes an empty result.
type Range struct {
	Begin  int
	Finish int
}

// Resolve turns a raw index into a position. Negative values count back
// from length. The result is not clamped and may lie outside [0, length).
func Resolve(i, length int) int {
	if i < 0 {
		return length + i
	}
	return i
}

// ResolveRange normalizes raw begin/finish markers against length.
//
// Finish is capped at length but, when negative, only shifted by length and
// never floored, so a finish far before the start collapses the range.
// Begin is floored at 0 but never capped, so a begin past the end collapses
// it too. Emptiness is then a single comparison: Finish < Begin.
func ResolveRange(begin int, finish Bound, length int) Range {
	f, ok := finish.Value()
	switch {
	case !ok || f > length:
		f = length
	case f < 0:
		f = length + f
	}

	if begin < 0 {
		begin = length + begin
	}
	if begin < 0 {
		begin = 0
	}
	return Range{Begin: begin, Finish: f}
}

func (r Range) IsEmpty() bool {
	return r.Finish <= r.Begin
}

// Len returns the number of positions in r, 0 when r is empty.
func (r Range) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Finish - r.Begin
}

func (r Range) Contains(pos int) bool {
	return r.Begin <= pos && pos < r.Finish
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Begin, r.Finish)
}
