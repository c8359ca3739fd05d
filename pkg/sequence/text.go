package sequence

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Runes treats a string as a sequence of code points. Each invalid UTF-8
// byte is a unit of its own; At reports it as utf8.RuneError, while slices
// copy the original byte unchanged.
type Runes struct{}

func (Runes) Len(s string) int    { return utf8.RuneCountInString(s) }
func (Runes) Empty(string) string { return "" }

func (Runes) At(s string, i int) rune {
	for off := 0; off < len(s); {
		c, size := utf8.DecodeRuneInString(s[off:])
		if i == 0 {
			return c
		}
		i--
		off += size
	}
	panic("sequence: rune position out of range")
}

func (Runes) NewFrom(s string, positions []int) string {
	offsets := runeOffsets(s)
	var sb strings.Builder
	for _, pos := range positions {
		sb.WriteString(s[offsets[pos]:offsets[pos+1]])
	}
	return sb.String()
}

func (Runes) CopyRange(s string, begin, finish int) string {
	if finish <= begin {
		return ""
	}
	offsets := runeOffsets(s)
	return strings.Clone(s[offsets[begin]:offsets[finish]])
}

// runeOffsets returns the byte offset of every code point in s followed by
// len(s), so unit i spans offsets[i]:offsets[i+1].
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for off := 0; off < len(s); {
		offsets = append(offsets, off)
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return append(offsets, len(s))
}

// Bytes treats a string as a sequence of bytes. Slices may split multibyte
// characters.
type Bytes struct{}

func (Bytes) Len(s string) int        { return len(s) }
func (Bytes) At(s string, i int) byte { return s[i] }
func (Bytes) Empty(string) string     { return "" }

func (Bytes) NewFrom(s string, positions []int) string {
	b := make([]byte, len(positions))
	for j, pos := range positions {
		b[j] = s[pos]
	}
	return string(b)
}

func (Bytes) CopyRange(s string, begin, finish int) string {
	if finish <= begin {
		return ""
	}
	return strings.Clone(s[begin:finish])
}

// Graphemes treats a string as a sequence of grapheme clusters, the
// user-perceived characters. Elements are the clusters themselves.
type Graphemes struct{}

func (Graphemes) Len(s string) int    { return uniseg.GraphemeClusterCount(s) }
func (Graphemes) Empty(string) string { return "" }

func (Graphemes) At(s string, i int) string {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if i == 0 {
			return g.Str()
		}
		i--
	}
	panic("sequence: grapheme position out of range")
}

func (Graphemes) NewFrom(s string, positions []int) string {
	clusters := graphemes(s)
	var sb strings.Builder
	for _, pos := range positions {
		sb.WriteString(clusters[pos])
	}
	return sb.String()
}

func graphemes(s string) []string {
	clusters := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}
