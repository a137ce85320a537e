package textwrap

// OptimalFit chooses line breaks by minimizing a global badness cost
// over all lines at once, in the style of Knuth–Plass. Compared to
// first fit it avoids very loose lines by accepting slightly earlier
// breaks elsewhere.
//
// The cost of a wrapping is the sum over its lines of:
//
//   - Penalties.NLine for every line after the first;
//   - the squared gap (target − width)² for every line but the last
//     that falls short of its target;
//   - (width − target) × Penalties.Overflow for lines above target;
//   - Penalties.ShortLastLine when the last line is shorter than
//     ShortLastLineFraction of its target;
//   - Penalties.Hyphen when a line ends at a hyphenation break.
//
// The dynamic program over break boundaries is accelerated with an
// online totally-monotone-matrix search (see smawk.go), which keeps
// the whole computation close to linear in the number of fragments.
// Ties in cost keep the earliest predecessor.
type OptimalFit struct {
	Penalties Penalties
}

// Wrap implements WrapAlgorithm. All split points are materialized up
// front, since a globally optimal choice needs every candidate break.
func (of *OptimalFit) Wrap(frags []Fragment, widths LineWidths, splitter WordSplitter, breakLongWords bool) [][]Fragment {
	if splitter == nil {
		splitter = NoSplit{}
	}
	frags = splitWords(frags, splitter)
	if breakLongWords {
		frags = breakWords(frags, widths.Rest)
	}
	if len(frags) == 0 {
		return nil
	}

	breaks := of.lineBreaks(frags, widths)
	lines := make([][]Fragment, 0, len(breaks))
	start := 0
	for _, end := range breaks {
		lines = append(lines, frags[start:end])
		start = end
	}
	return lines
}

// lineBreaks returns the boundaries after the last fragment of every
// line of the optimal wrapping, in increasing order and ending at
// len(frags).
func (of *OptimalFit) lineBreaks(frags []Fragment, widths LineWidths) []int {
	n := len(frags)

	// cum[k] is the width of fragments before boundary k, trailing
	// whitespace included.
	cum := make([]int, n+1)
	for k, f := range frags {
		cum[k+1] = cum[k] + f.width + f.spaceWidth
	}

	ln := &lineNumberCache{numbers: []int{0}}
	cost := func(minima []minimum, i, j int) float64 {
		return minima[i].value +
			of.Penalties.lineCost(frags, cum, widths, ln.get(minima, i), i, j)
	}
	minima := onlineColumnMinima(n+1, cost)

	var breaks []int
	for pos := n; pos > 0; pos = minima[pos].index {
		breaks = append(breaks, pos)
	}
	for l, r := 0, len(breaks)-1; l < r; l, r = l+1, r-1 {
		breaks[l], breaks[r] = breaks[r], breaks[l]
	}
	return breaks
}

// lineCost returns the badness of a line holding frags[i:j], given the
// zero-based number of that line. cum holds the prefix widths used by
// lineBreaks.
func (p Penalties) lineCost(frags []Fragment, cum []int, widths LineWidths, lineNumber, i, j int) float64 {
	target := widths.At(lineNumber)
	if target < 1 {
		target = 1
	}
	last := frags[j-1]
	lineWidth := cum[j] - cum[i] - last.spaceWidth + last.penaltyWidth

	var cost float64
	if i > 0 {
		cost += p.NLine
	}
	switch {
	case lineWidth > target:
		cost += float64(lineWidth-target) * p.Overflow
	case j < len(frags):
		gap := float64(target - lineWidth)
		cost += gap * gap
	case float64(lineWidth) < p.ShortLastLineFraction*float64(target):
		cost += p.ShortLastLine
	}
	if last.hasBreak {
		cost += p.Hyphen
	}
	return cost
}

// lineNumberCache memoizes the number of the line starting at each
// break boundary, derived by walking the finished backpointers.
type lineNumberCache struct {
	numbers []int
}

func (ln *lineNumberCache) get(minima []minimum, i int) int {
	for len(ln.numbers) < i+1 {
		pos := len(ln.numbers)
		ln.numbers = append(ln.numbers, 1+ln.get(minima, minima[pos].index))
	}
	return ln.numbers[i]
}
