package textwrap

import "strings"

// FirstFit wraps greedily in a single left-to-right pass: each
// fragment goes onto the current line if it fits together with its
// trailing whitespace, and otherwise either the word is split at its
// widest fitting split point or the line is finished and the fragment
// retried on a fresh one. There is no backtracking; within a line the
// algorithm always packs as many fragments as possible.
//
// Words wider than a whole line overflow on a line of their own when
// breakLongWords is false; otherwise they are split at their first
// split point or, lacking one, broken apart between grapheme clusters.
type FirstFit struct{}

// Wrap implements WrapAlgorithm.
func (FirstFit) Wrap(frags []Fragment, widths LineWidths, splitter WordSplitter, breakLongWords bool) [][]Fragment {
	if splitter == nil {
		splitter = NoSplit{}
	}

	var lines [][]Fragment
	var line []Fragment
	acc := 0 // width of line including trailing whitespace

	flush := func() {
		lines = append(lines, line)
		line = nil
		acc = 0
	}

	pending := make([]Fragment, len(frags))
	copy(pending, frags)
	for len(pending) > 0 {
		f := pending[0]
		target := widths.At(len(lines))
		remaining := target - acc

		if f.width+f.spaceWidth+f.penaltyWidth <= remaining {
			line = append(line, f)
			acc += f.width + f.spaceWidth
			pending = pending[1:]
			continue
		}

		// The fragment and its whitespace overflow the remaining
		// space. Prefer ending the line at the widest split point
		// that still fits.
		var points []int
		if !f.IsWhitespace() {
			points = validPoints(splitter.SplitPoints(f.Word), len(f.Word))
		}
		if best, ok := widestFittingSplit(f, points, remaining); ok {
			first, rest := splitFragmentAt(f, best)
			line = append(line, first)
			flush()
			pending[0] = rest
			continue
		}

		if len(line) > 0 {
			if f.width+f.penaltyWidth <= remaining {
				// Fits once it no longer claims its whitespace.
				line = append(line, f)
				acc += f.width + f.spaceWidth
				pending = pending[1:]
				continue
			}
			flush()
			continue
		}

		// Fresh line and the word alone is still too wide.
		if breakLongWords && f.width > target {
			if pieces := breakApart(f, target); len(pieces) > 1 {
				pending = append(pieces, pending[1:]...)
				continue
			}
		}
		if len(points) > 0 && f.width > target {
			// No split point fits, so take the first one to keep
			// the overflow as small as possible.
			first, rest := splitFragmentAt(f, points[0])
			pending = append([]Fragment{first, rest}, pending[1:]...)
			continue
		}

		// Let it overflow.
		line = append(line, f)
		acc += f.width + f.spaceWidth
		pending = pending[1:]
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// validPoints drops split points that fall outside (0, wordLen) or are
// out of order, so every piece they induce is non-empty.
func validPoints(points []int, wordLen int) []int {
	out := points[:0]
	prev := 0
	for _, idx := range points {
		if idx > prev && idx < wordLen {
			out = append(out, idx)
			prev = idx
		}
	}
	return out
}

// widestFittingSplit returns the split point of f whose leading piece,
// including any synthetic hyphen, still fits in the remaining space.
func widestFittingSplit(f Fragment, points []int, remaining int) (int, bool) {
	best := -1
	for _, idx := range points {
		piece := f.Word[:idx]
		w := DisplayWidth(piece)
		if !strings.HasSuffix(piece, "-") {
			w++ // synthetic hyphen
		}
		if w <= remaining {
			best = idx
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
