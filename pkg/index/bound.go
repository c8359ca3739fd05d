package index

import (
	"math"
	"strconv"
)

// EndMarker is the historical "slice to the end" value. A finish of
// At(EndMarker) resolves exactly like End. New code should use End.
const EndMarker = math.MaxInt

// Bound is a finish marker: either an explicit raw index or no explicit end.
// The zero value is End.
type Bound struct {
	value int
	set   bool
}

// End means "no explicit end; extend to the length of the sequence".
var End = Bound{}

// At returns a Bound for the raw, possibly negative, index i.
func At(i int) Bound {
	return Bound{value: i, set: true}
}

// Value returns the raw index and false when b is End.
func (b Bound) Value() (int, bool) {
	return b.value, b.set
}

func (b Bound) IsEnd() bool {
	return !b.set || b.value == EndMarker
}

func (b Bound) String() string {
	if b.IsEnd() {
		return "end"
	}
	return strconv.Itoa(b.value)
}
