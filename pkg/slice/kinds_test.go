package slice

import (
	"net/netip"
	"testing"

	"github.com/henderiw/slicer/pkg/addrpool"
	"github.com/henderiw/slicer/pkg/index"
	"github.com/henderiw/slicer/pkg/sequence"
	"github.com/henderiw/slicer/pkg/stride"
	"github.com/stretchr/testify/require"
)

// harness erases the sequence kind so one table of scenarios can run
// against every kind. Results are compared element-wise.
type harness interface {
	source() []any
	element(i int) (any, error)
	strided(begin int, finish index.Bound, step int) ([]any, error)
	// walked extracts [begin, finish) position by position, bypassing the
	// contiguous fast path.
	walked(begin int, finish index.Bound) []any
	reverseTwice() ([]any, error)
}

type kind[S, E any] struct {
	adapter sequence.Adapter[S, E]
	src     S
}

func (k kind[S, E]) values(s S) []any {
	n := k.adapter.Len(s)
	values := make([]any, n)
	for i := 0; i < n; i++ {
		values[i] = k.adapter.At(s, i)
	}
	return values
}

func (k kind[S, E]) source() []any { return k.values(k.src) }

func (k kind[S, E]) element(i int) (any, error) {
	e, err := Element(k.adapter, k.src, i)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (k kind[S, E]) strided(begin int, finish index.Bound, step int) ([]any, error) {
	s, err := Strided(k.adapter, k.src, begin, finish, step)
	if err != nil {
		return nil, err
	}
	return k.values(s), nil
}

func (k kind[S, E]) walked(begin int, finish index.Bound) []any {
	r := index.ResolveRange(begin, finish, k.adapter.Len(k.src))
	if r.Finish < r.Begin {
		return k.values(k.adapter.Empty(k.src))
	}
	positions, _ := stride.Positions(r, 1)
	return k.values(k.adapter.NewFrom(k.src, positions))
}

func (k kind[S, E]) reverseTwice() ([]any, error) {
	once, err := Strided(k.adapter, k.src, 0, index.End, -1)
	if err != nil {
		return nil, err
	}
	twice, err := Strided(k.adapter, once, 0, index.End, -1)
	if err != nil {
		return nil, err
	}
	return k.values(twice), nil
}

type temperatures []float64

// kinds returns every supported kind, each holding a five element source.
func kinds(t *testing.T) map[string]harness {
	pool, err := addrpool.Parse("10.0.0.1-10.0.0.3", "10.0.0.9-10.0.0.10")
	require.NoError(t, err)

	return map[string]harness{
		"Runes":            kind[string, rune]{adapter: sequence.Runes{}, src: "HelpA"},
		"RunesMultibyte":   kind[string, rune]{adapter: sequence.Runes{}, src: "Hëlp☕"},
		"RunesInvalidUTF8": kind[string, rune]{adapter: sequence.Runes{}, src: "a\xffbcd"},
		"Bytes":            kind[string, byte]{adapter: sequence.Bytes{}, src: "HelpA"},
		"Graphemes":        kind[string, string]{adapter: sequence.Graphemes{}, src: "HelpA"},
		"GraphemesClusters": kind[string, string]{
			adapter: sequence.Graphemes{},
			src:     "H" + "e\u0301" + "\U0001F1EB\U0001F1F7" + "pA",
		},
		"Array": kind[[]int, int]{
			adapter: sequence.Array[[]int, int]{},
			src:     []int{42, 14, 0, -32, 1},
		},
		"NamedArray": kind[temperatures, float64]{
			adapter: sequence.Array[temperatures, float64]{},
			src:     temperatures{21.5, 19, -3.25, 0, 8},
		},
		"Strings": kind[[]string, string]{
			adapter: sequence.Array[[]string, string]{},
			src:     []string{"a", "b", "c", "d", "e"},
		},
		"List": kind[*sequence.List[int], int]{
			adapter: sequence.Lists[int]{},
			src:     sequence.NewList(42, 14, 0, -32, 1),
		},
		"AddrPool": kind[addrpool.Pool, netip.Addr]{adapter: addrpool.Adapter{}, src: pool},
	}
}

// at picks the source elements at positions.
func at(src []any, positions ...int) []any {
	values := make([]any, 0, len(positions))
	for _, pos := range positions {
		values = append(values, src[pos])
	}
	return values
}
