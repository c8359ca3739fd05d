package sequence

import (
	"fmt"
	"sync"
)

// List is the growable kind. It guards its elements with its own lock; a
// slice taken while another goroutine mutates the list observes either state
// per element, so callers that need a consistent snapshot must not mutate
// the source during the call.
type List[E any] struct {
	m        *sync.RWMutex
	elements []E
}

func NewList[E any](elements ...E) *List[E] {
	return &List[E]{
		m:        new(sync.RWMutex),
		elements: append([]E(nil), elements...),
	}
}

func (r *List[E]) Append(elements ...E) {
	r.m.Lock()
	defer r.m.Unlock()

	r.elements = append(r.elements, elements...)
}

func (r *List[E]) Len() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.elements)
}

// At returns the element at position i and panics if i is out of range.
func (r *List[E]) At(i int) E {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.elements[i]
}

func (r *List[E]) Set(i int, e E) error {
	r.m.Lock()
	defer r.m.Unlock()

	if i < 0 || i >= len(r.elements) {
		return fmt.Errorf("position %d out of range for list of length %d", i, len(r.elements))
	}
	r.elements[i] = e
	return nil
}

// Values returns a copy of the elements.
func (r *List[E]) Values() []E {
	r.m.RLock()
	defer r.m.RUnlock()

	values := make([]E, len(r.elements))
	copy(values, r.elements)
	return values
}

func (r *List[E]) String() string {
	return fmt.Sprint(r.Values())
}

// Lists adapts *List[E] to the slicing algorithms.
type Lists[E any] struct{}

func (Lists[E]) Len(l *List[E]) int        { return l.Len() }
func (Lists[E]) At(l *List[E], i int) E    { return l.At(i) }
func (Lists[E]) Empty(l *List[E]) *List[E] { return NewList[E]() }

func (Lists[E]) NewFrom(l *List[E], positions []int) *List[E] {
	l.m.RLock()
	defer l.m.RUnlock()

	r := NewList[E]()
	for _, pos := range positions {
		r.elements = append(r.elements, l.elements[pos])
	}
	return r
}
