/*
Package textwrap wraps text into lines of a given display width, for
monospace output such as terminals.

Two wrapping strategies are provided: a greedy pass that fills each
line as far as it goes, and a global optimizer in the style of
Knuth–Plass that balances line lengths across the whole paragraph.
Width is measured in terminal columns, so CJK characters, emoji,
combining marks, and ANSI color codes are all accounted for.

# Getting Started

For simple use cases:
  - [Wrap] - wrap text into a slice of lines
  - [Fill] - wrap text into a single string joined with line breaks
  - [NewOptions] - sensible defaults for a given width

	opts := textwrap.NewOptions(25)
	lines, _ := textwrap.Wrap("The quick brown fox jumps over the lazy dog", opts)
	// ["The quick brown fox jumps", "over the lazy dog"]

# Options

[Options] selects every variation point at configuration time:
  - Width, InitialIndent, SubsequentIndent - line geometry
  - [WordSeparator] - how text splits into words: [AsciiSpace] or
    [UnicodeBreakProperties] (Unicode Standard Annex #14, for scripts
    without spaces)
  - [WordSplitter] - where words may break internally: [NoSplit],
    [ExistingHyphen], or a [SplitFunc] backed by a hyphenation
    dictionary
  - [WrapAlgorithm] - [FirstFit] or [OptimalFit]
  - BreakWords - whether words wider than a whole line are broken
    apart or left overflowing

Invalid configurations (a non-positive width, penalties out of range)
are reported by [Options.Validate] and by the entry points as
[ErrInvalidConfiguration]; everything else is valid input and wraps
without error.

# Optimal Fit

[OptimalFit] minimizes a badness cost over all lines at once,
weighted by [Penalties]: gaps below the target width, overflow above
it, hyphenated breaks, extra lines, and a too-short last line. With
[DefaultPenalties] the optimizer prefers evenly filled lines:

	To be, or          To be,
	not to be:         or not to
	that is      vs.   be: that
	the                is the
	question           question

The left column is first fit, the right column optimal fit, both at
width 10. The search runs in close to linear time using a totally
monotone matrix algorithm, so long paragraphs are fine.

# Display Width

[DisplayWidth] measures strings the way the wrapping does: per code
point, East-Asian-width aware, with zero width for ANSI CSI escape
sequences. Helpers [Indent], [Dedent], and [TerminalWidth] round out
typical command line usage.

# Concurrency

Every function in this package is pure: no global state is written,
results depend only on the arguments, and concurrent calls need no
synchronization.
*/
package textwrap
