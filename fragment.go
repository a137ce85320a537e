package textwrap

import "strings"

// Fragment is the atomic unit consumed by the wrap algorithms: a word,
// the whitespace that follows it, and a penalty string rendered only
// when a line breaks right after the word (a synthetic hyphen, for
// dictionary hyphenation).
//
// A fragment with an empty Word is a bare whitespace run, which only
// occurs at the start of a line. Display widths are measured once at
// construction.
type Fragment struct {
	Word       string
	Whitespace string
	Penalty    string

	// hasBreak marks fragments ending at a splitter-provided
	// hyphenation opportunity.
	hasBreak bool

	width        int
	spaceWidth   int
	penaltyWidth int
}

// NewFragment turns a span of text into a Fragment. Trailing ASCII
// spaces become the fragment's whitespace; everything before them is
// the word.
func NewFragment(span string) Fragment {
	word := strings.TrimRight(span, " ")
	f := Fragment{Word: word, Whitespace: span[len(word):]}
	f.measure()
	return f
}

func (f *Fragment) measure() {
	f.width = DisplayWidth(f.Word)
	f.spaceWidth = DisplayWidth(f.Whitespace)
	f.penaltyWidth = DisplayWidth(f.Penalty)
}

// Width returns the display width of the word.
func (f Fragment) Width() int { return f.width }

// WhitespaceWidth returns the display width of the trailing whitespace.
func (f Fragment) WhitespaceWidth() int { return f.spaceWidth }

// PenaltyWidth returns the display width added when a line breaks
// right after the word.
func (f Fragment) PenaltyWidth() int { return f.penaltyWidth }

// IsWhitespace reports whether the fragment is a bare whitespace run.
func (f Fragment) IsWhitespace() bool { return f.Word == "" }

// EndsAtBreak reports whether a line ending at this fragment ends at a
// hyphenation break.
func (f Fragment) EndsAtBreak() bool { return f.hasBreak }

// splitFragmentAt splits f at the byte offset idx of its word,
// returning the leading piece and the remainder. The leading piece
// gets a synthetic hyphen penalty unless it already ends in one; the
// remainder keeps f's whitespace and penalty.
func splitFragmentAt(f Fragment, idx int) (Fragment, Fragment) {
	first := Fragment{Word: f.Word[:idx], hasBreak: true}
	if !strings.HasSuffix(first.Word, "-") {
		first.Penalty = "-"
	}
	first.measure()

	rest := f
	rest.Word = f.Word[idx:]
	rest.measure()
	return first, rest
}

// breakApart splits f into pieces no wider than lineWidth, breaking
// between grapheme clusters. ANSI escape sequences never cause a
// break. The pieces carry no hyphen glyph and no hyphenation penalty;
// this is the forced fallback for words with no natural split points.
func breakApart(f Fragment, lineWidth int) []Fragment {
	var pieces []Fragment
	start, consumed, width := 0, 0, 0

	rest := f.Word
	for rest != "" {
		cell, w, r := nextCell(rest)
		if width > 0 && width+w > lineWidth {
			piece := Fragment{Word: f.Word[start:consumed]}
			piece.measure()
			pieces = append(pieces, piece)
			start = consumed
			width = 0
		}
		width += w
		consumed += len(cell)
		rest = r
	}
	if start == 0 {
		return []Fragment{f}
	}

	last := f
	last.Word = f.Word[start:]
	last.measure()
	return append(pieces, last)
}

// breakWords force-breaks every fragment wider than lineWidth.
func breakWords(frags []Fragment, lineWidth int) []Fragment {
	out := make([]Fragment, 0, len(frags))
	for _, f := range frags {
		if f.width > lineWidth {
			out = append(out, breakApart(f, lineWidth)...)
		} else {
			out = append(out, f)
		}
	}
	return out
}
