package textwrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DisplayWidth returns the number of terminal columns needed to show
// text in a monospace font.
//
// Widths are assigned per code point using the Unicode East Asian
// Width property, so CJK characters count as two columns while zero
// width joiners, combining marks, and variation selectors count as
// zero:
//
//	DisplayWidth("Café Plain")  // 10
//	DisplayWidth("Café 中文")   // 9
//
// ANSI CSI escape sequences, such as the color codes emitted by
// terminal styling libraries, occupy no columns:
//
//	DisplayWidth("\x1b[31mred\x1b[0m")  // 3
func DisplayWidth(text string) int {
	width := 0
	for len(text) > 0 {
		var w int
		_, w, text = nextCell(text)
		width += w
	}
	return width
}

// nextCell splits off the leading ANSI CSI sequence or grapheme
// cluster of s and reports its display width. CSI sequences start
// with ESC '[' and run through the first byte in 0x40..0x7E.
func nextCell(s string) (cell string, width int, rest string) {
	if strings.HasPrefix(s, "\x1b[") {
		for i := 2; i < len(s); i++ {
			if b := s[i]; b >= 0x40 && b <= 0x7e {
				return s[:i+1], 0, s[i+1:]
			}
		}
		return s, 0, ""
	}
	cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	w := 0
	for _, r := range cluster {
		w += runewidth.RuneWidth(r)
	}
	return cluster, w, rest
}

// stripEscapes removes ANSI CSI sequences from s. toOriginal maps
// every byte index of the stripped string, plus the index one past
// its end, back to the corresponding index in s.
func stripEscapes(s string) (stripped string, toOriginal []int) {
	var b strings.Builder
	toOriginal = make([]int, 0, len(s)+1)
	i := 0
	for i < len(s) {
		if strings.HasPrefix(s[i:], "\x1b[") {
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
			continue
		}
		toOriginal = append(toOriginal, i)
		b.WriteByte(s[i])
		i++
	}
	toOriginal = append(toOriginal, len(s))
	return b.String(), toOriginal
}
