package slice

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/henderiw/slicer/pkg/index"
	"github.com/henderiw/slicer/pkg/sequence"
	"github.com/henderiw/slicer/pkg/stride"
)

// ValidationFn is called with the resolved range and stride before any
// element is copied. A non-nil error fails the call.
type ValidationFn func(r index.Range, step int) error

type Option func(*config)

type config struct {
	log        logr.Logger
	validateFn ValidationFn
}

// WithLogger logs resolved ranges at V(1).
func WithLogger(log logr.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

func WithValidation(fn ValidationFn) Option {
	return func(c *config) {
		c.validateFn = fn
	}
}

// Slicer binds a sequence kind to the slicing entry points. It is
// immutable and safe for concurrent use.
type Slicer[S, E any] struct {
	adapter    sequence.Adapter[S, E]
	log        logr.Logger
	validateFn ValidationFn
}

func New[S, E any](a sequence.Adapter[S, E], opts ...Option) *Slicer[S, E] {
	c := config{log: logr.Discard()}
	for _, opt := range opts {
		opt(&c)
	}
	return &Slicer[S, E]{
		adapter:    a,
		log:        c.log,
		validateFn: c.validateFn,
	}
}

// Runes slices text by code point.
func Runes(opts ...Option) *Slicer[string, rune] {
	return New[string, rune](sequence.Runes{}, opts...)
}

// Bytes slices text by byte.
func Bytes(opts ...Option) *Slicer[string, byte] {
	return New[string, byte](sequence.Bytes{}, opts...)
}

// Graphemes slices text by user-perceived character.
func Graphemes(opts ...Option) *Slicer[string, string] {
	return New[string, string](sequence.Graphemes{}, opts...)
}

// Array slices values of the slice type S, e.g. Array[[]int]().
func Array[S ~[]E, E any](opts ...Option) *Slicer[S, E] {
	return New[S, E](sequence.Array[S, E]{}, opts...)
}

// List slices growable *sequence.List[E] values.
func List[E any](opts ...Option) *Slicer[*sequence.List[E], E] {
	return New[*sequence.List[E], E](sequence.Lists[E]{}, opts...)
}

func (r *Slicer[S, E]) Element(s S, i int) (E, error) {
	return Element(r.adapter, s, i)
}

// Range is Strided with a stride of 1. It only fails when a validation hook
// rejects the range.
func (r *Slicer[S, E]) Range(s S, begin int, finish index.Bound) (S, error) {
	return r.Strided(s, begin, finish, 1)
}

func (r *Slicer[S, E]) Strided(s S, begin int, finish index.Bound, step int) (S, error) {
	var zero S
	length := r.adapter.Len(s)
	rng, err := resolve(length, begin, finish, step)
	if err != nil {
		return zero, err
	}
	r.log.V(1).Info("resolved slice",
		"length", length,
		"begin", begin,
		"finish", finish.String(),
		"range", rng.String(),
		"stride", step,
		"count", stride.Count(rng, step),
	)
	if r.validateFn != nil {
		if err := r.validateFn(rng, step); err != nil {
			return zero, fmt.Errorf("validation failed for range %s stride %d: %w", rng, step, err)
		}
	}
	return extract(r.adapter, s, rng, step), nil
}

// Apply slices s with a parsed expression.
func (r *Slicer[S, E]) Apply(s S, x Expr) (S, error) {
	return r.Strided(s, x.Begin, x.Finish, x.Stride)
}
