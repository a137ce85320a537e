package textwrap

import (
	"unicode"
	"unicode/utf8"
)

// A WordSplitter finds legal break points inside a single word. The
// returned byte offsets are in increasing order and exclude 0 and
// len(word), so every piece is non-empty.
type WordSplitter interface {
	SplitPoints(word string) []int
}

// NoSplit never splits words.
type NoSplit struct{}

// SplitPoints implements WordSplitter.
func (NoSplit) SplitPoints(string) []int { return nil }

// ExistingHyphen splits words at hyphens already present in the text,
// but only when the hyphen sits between letters or digits. This keeps
// "--verbose" and trailing dashes intact while allowing a break after
// "self-" in "self-made".
//
// Breaking at such a point adds no glyph: the hyphen is already there.
type ExistingHyphen struct{}

// SplitPoints implements WordSplitter.
func (ExistingHyphen) SplitPoints(word string) []int {
	var points []int
	for idx, ch := range word {
		if ch != '-' {
			continue
		}
		prev, _ := utf8.DecodeLastRuneInString(word[:idx])
		next, _ := utf8.DecodeRuneInString(word[idx+1:])
		if isAlphanumeric(prev) && isAlphanumeric(next) {
			points = append(points, idx+1)
		}
	}
	return points
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// SplitFunc adapts a hyphenation routine, such as one backed by TeX
// hyphenation patterns, into a WordSplitter. Breaking at a returned
// offset inserts a synthetic hyphen unless the text before it already
// ends in one.
type SplitFunc func(word string) []int

// SplitPoints implements WordSplitter.
func (f SplitFunc) SplitPoints(word string) []int { return f(word) }

// splitFragment breaks f at the splitter's split points. Pieces other
// than the last end at a hyphenation break; the last piece keeps f's
// whitespace and penalty.
func splitFragment(f Fragment, splitter WordSplitter) []Fragment {
	points := splitter.SplitPoints(f.Word)
	if len(points) == 0 {
		return []Fragment{f}
	}

	pieces := make([]Fragment, 0, len(points)+1)
	rest := f
	prev := 0
	for _, idx := range points {
		if idx <= prev || idx >= len(f.Word) {
			continue
		}
		var first Fragment
		first, rest = splitFragmentAt(rest, idx-prev)
		pieces = append(pieces, first)
		prev = idx
	}
	return append(pieces, rest)
}

// splitWords applies the splitter to every word fragment, expanding
// the fragment sequence with the resulting break opportunities. The
// optimal-fit algorithm needs the full set of candidates up front.
func splitWords(frags []Fragment, splitter WordSplitter) []Fragment {
	out := make([]Fragment, 0, len(frags))
	for _, f := range frags {
		if f.IsWhitespace() {
			out = append(out, f)
			continue
		}
		out = append(out, splitFragment(f, splitter)...)
	}
	return out
}
