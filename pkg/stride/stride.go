// Package stride enumerates the source positions selected by a stride over a
// resolved range.
//
// A positive stride walks [Begin, Finish) upward from Begin. A negative
// stride walks the same range downward from Finish-1. Both walks stay inside
// the range, so a negative stride reverses (and decimates) the range rather
// than reinterpreting its bounds.
package stride

import (
	"errors"
	"iter"

	"github.com/henderiw/slicer/pkg/index"
)

var ErrZeroStride = errors.New("slice stride cannot be zero")

func Validate(step int) error {
	if step == 0 {
		return ErrZeroStride
	}
	return nil
}

// Count returns the number of positions a walk of r by step visits.
// It returns 0 for an empty range or a zero step.
func Count(r index.Range, step int) int {
	n := r.Len()
	if n == 0 || step == 0 {
		return 0
	}
	return int(uint(n-1)/magnitude(step) + 1)
}

// All yields the positions of r selected by step, in walk order.
func All(r index.Range, step int) iter.Seq[int] {
	count := Count(r, step)
	start := r.Begin
	if step < 0 {
		start = r.Finish - 1
	}
	return func(yield func(int) bool) {
		// driven by count so start+k*step never leaves the range
		for k := 0; k < count; k++ {
			if !yield(start + k*step) {
				return
			}
		}
	}
}

// Positions returns the positions of r selected by step, pre-sized to
// Count(r, step).
func Positions(r index.Range, step int) ([]int, error) {
	if err := Validate(step); err != nil {
		return nil, err
	}
	positions := make([]int, 0, Count(r, step))
	for pos := range All(r, step) {
		positions = append(positions, pos)
	}
	return positions, nil
}

// magnitude returns |step| as a uint, which also holds |math.MinInt|.
func magnitude(step int) uint {
	if step < 0 {
		return uint(-step)
	}
	return uint(step)
}
