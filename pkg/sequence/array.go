package sequence

import "slices"

// Array is the fixed-size kind: any slice type S. Results keep the named
// type of the source and are allocated at their exact final length.
type Array[S ~[]E, E any] struct{}

func (Array[S, E]) Len(s S) int     { return len(s) }
func (Array[S, E]) At(s S, i int) E { return s[i] }
func (Array[S, E]) Empty(s S) S     { return make(S, 0) }

func (Array[S, E]) NewFrom(s S, positions []int) S {
	r := make(S, len(positions))
	for j, pos := range positions {
		r[j] = s[pos]
	}
	return r
}

func (a Array[S, E]) CopyRange(s S, begin, finish int) S {
	if finish <= begin {
		return a.Empty(s)
	}
	return slices.Clone(s[begin:finish])
}
