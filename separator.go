package textwrap

import (
	"strings"

	"github.com/rivo/uniseg"
)

// A WordSeparator splits a single line of text into fragments. The
// returned fragments cover the line completely and in order; nothing
// is trimmed or collapsed at this stage.
type WordSeparator interface {
	Separate(line string) []Fragment
}

// AsciiSpace separates words on runs of ASCII space characters. Each
// word keeps its trailing spaces as whitespace; a run of spaces at the
// start of the line becomes its own whitespace fragment. All other
// characters, including tabs and non-breaking spaces, are part of the
// surrounding word.
type AsciiSpace struct{}

// Separate implements WordSeparator.
func (AsciiSpace) Separate(line string) []Fragment {
	var frags []Fragment
	start := 0
	inWhitespace := false
	for idx, ch := range line {
		if inWhitespace && ch != ' ' {
			frags = append(frags, NewFragment(line[start:idx]))
			start = idx
		}
		inWhitespace = ch == ' '
	}
	if start < len(line) {
		frags = append(frags, NewFragment(line[start:]))
	}
	return frags
}

// UnicodeBreakProperties separates words at the line break
// opportunities defined by Unicode Standard Annex #14. This finds
// boundaries in scripts without explicit spaces, such as CJK text, and
// honors non-breaking spaces.
//
// Opportunities directly after a hyphen-minus or a soft hyphen are
// suppressed; breaking inside hyphenated words is the word splitter's
// job. ANSI CSI escape sequences are invisible to the classification
// and stay attached to the text that follows them.
type UnicodeBreakProperties struct{}

// Separate implements WordSeparator.
func (UnicodeBreakProperties) Separate(line string) []Fragment {
	stripped, toOriginal := stripEscapes(line)

	var frags []Fragment
	start := 0   // original index of the current fragment
	pos := 0     // stripped index of the segmentation cursor
	state := -1
	rest := stripped
	for len(rest) > 0 {
		var segment string
		segment, rest, _, state = uniseg.FirstLineSegmentInString(rest, state)
		pos += len(segment)
		if len(rest) > 0 && suppressBreakAfter(segment) {
			continue
		}
		end := toOriginal[pos]
		if len(rest) == 0 {
			// The last fragment picks up any trailing escapes.
			end = len(line)
		}
		frags = append(frags, NewFragment(line[start:end]))
		start = end
	}
	return frags
}

// suppressBreakAfter reports whether the break opportunity after
// segment should be ignored because it sits right after a hyphen or
// soft hyphen.
func suppressBreakAfter(segment string) bool {
	return strings.HasSuffix(segment, "-") || strings.HasSuffix(segment, "\u00ad")
}
