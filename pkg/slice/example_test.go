package slice_test

import (
	"errors"
	"fmt"

	"github.com/henderiw/slicer/pkg/index"
	"github.com/henderiw/slicer/pkg/sequence"
	"github.com/henderiw/slicer/pkg/slice"
)

func ExampleRange() {
	var runes sequence.Adapter[string, rune] = sequence.Runes{}
	fmt.Println(slice.Range(runes, "HelpA", 0, index.At(2)))
	fmt.Println(slice.Range(runes, "HelpA", 2, index.End))
	fmt.Println(slice.Range(runes, "HelpA", -2, index.End))
	fmt.Printf("%q\n", slice.Range(runes, "HelpA", 10, index.End))
	// Output:
	// He
	// lpA
	// pA
	// ""
}

func ExampleStrided() {
	ints := slice.Array[[]int]()
	src := []int{42, 14, 0, -32, 1}

	every2nd, _ := ints.Strided(src, 0, index.End, 2)
	reversed, _ := ints.Strided(src, 0, index.End, -1)
	_, err := ints.Strided(src, 0, index.End, 0)

	fmt.Println(every2nd)
	fmt.Println(reversed)
	fmt.Println(errors.Is(err, slice.ErrZeroStride))
	// Output:
	// [42 0 1]
	// [1 -32 0 14 42]
	// true
}

func ExampleElement() {
	var runes sequence.Adapter[string, rune] = sequence.Runes{}
	e, _ := slice.Element(runes, "HelpA", -1)
	fmt.Println(string(e))

	_, err := slice.Element(runes, "HelpA", -10)
	fmt.Println(err)
	// Output:
	// A
	// index -10 (position -5) out of range for length 5
}

func ExampleParseExpr() {
	x, err := slice.ParseExpr("1::2")
	if err != nil {
		panic(err)
	}
	got, _ := slice.Graphemes().Apply("He\u0301llo", x)
	fmt.Println(x, got)
	// Output:
	// 1::2 él
}
