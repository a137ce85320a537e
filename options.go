package textwrap

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration is returned, wrapped with detail, when
// Options fail to validate. It is the only error the package produces.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// LineWidths gives the target width in display columns of the first
// output line and of every line after it. The two differ only when
// indentation is configured. Values are never negative.
type LineWidths struct {
	First int
	Rest  int
}

// At returns the target width of the given zero-based output line.
func (lw LineWidths) At(line int) int {
	if line == 0 {
		return lw.First
	}
	return lw.Rest
}

// A WrapAlgorithm partitions the fragments of a single line of text
// into output lines. widths gives the per-line targets, splitter
// supplies break points inside words that would not otherwise fit, and
// breakLongWords allows forced grapheme-level breaks for words with no
// such points.
type WrapAlgorithm interface {
	Wrap(frags []Fragment, widths LineWidths, splitter WordSplitter, breakLongWords bool) [][]Fragment
}

// Penalties configures the cost model of OptimalFit. All values must
// be finite and non-negative.
type Penalties struct {
	// NLine is charged for every line after the first.
	NLine float64

	// Overflow is charged per column by which a line exceeds its
	// target width. Lines below target instead cost the square of
	// the leftover columns, so badness grows quickly as lines get
	// raggedy but a hefty Overflow still dominates.
	Overflow float64

	// ShortLastLineFraction sets the threshold below which the last
	// line counts as too short, as a fraction of the target width.
	// Must be in (0, 1].
	ShortLastLineFraction float64

	// ShortLastLine is charged once when the last line is shorter
	// than ShortLastLineFraction of its target width.
	ShortLastLine float64

	// Hyphen is charged when a line ends at a hyphenation break.
	Hyphen float64
}

// DefaultPenalties returns the penalty configuration used by
// NewOptions.
func DefaultPenalties() Penalties {
	return Penalties{
		NLine:                 1000,
		Overflow:              7500,
		ShortLastLineFraction: 0.25,
		ShortLastLine:         100,
		Hyphen:                100,
	}
}

// Validate reports whether the penalties are usable.
func (p Penalties) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"nline penalty", p.NLine},
		{"overflow penalty", p.Overflow},
		{"short last line penalty", p.ShortLastLine},
		{"hyphen penalty", p.Hyphen},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) || v.value < 0 {
			return fmt.Errorf("%w: %s must be finite and non-negative, got %v",
				ErrInvalidConfiguration, v.name, v.value)
		}
	}
	if f := p.ShortLastLineFraction; math.IsNaN(f) || f <= 0 || f > 1 {
		return fmt.Errorf("%w: short last line fraction must be in (0, 1], got %v",
			ErrInvalidConfiguration, f)
	}
	return nil
}

// Options configures Wrap and Fill.
type Options struct {
	// Width is the target line width in display columns. Must be
	// positive.
	Width int

	// InitialIndent is prepended to the first output line and
	// SubsequentIndent to every line after it. Their display widths
	// narrow the respective targets.
	InitialIndent    string
	SubsequentIndent string

	// BreakWords allows breaking apart words that are wider than a
	// whole line and have no split points. When false such words
	// overflow on a line of their own.
	BreakWords bool

	// LineEnding joins the wrapped lines in Fill.
	LineEnding LineEnding

	WordSeparator WordSeparator
	WordSplitter  WordSplitter
	WrapAlgorithm WrapAlgorithm
}

// NewOptions returns the default configuration for the given width:
// ASCII space separation, splitting at existing hyphens, optimal-fit
// wrapping with DefaultPenalties, and breaking of over-wide words.
func NewOptions(width int) *Options {
	return &Options{
		Width:         width,
		BreakWords:    true,
		LineEnding:    LF,
		WordSeparator: AsciiSpace{},
		WordSplitter:  ExistingHyphen{},
		WrapAlgorithm: &OptimalFit{Penalties: DefaultPenalties()},
	}
}

// Validate reports whether the options are usable. Wrap and Fill call
// it before doing any work.
func (o *Options) Validate() error {
	if o.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d",
			ErrInvalidConfiguration, o.Width)
	}
	if of, ok := o.WrapAlgorithm.(*OptimalFit); ok {
		if err := of.Penalties.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// separator returns the configured word separator, defaulting to
// AsciiSpace.
func (o *Options) separator() WordSeparator {
	if o.WordSeparator == nil {
		return AsciiSpace{}
	}
	return o.WordSeparator
}

// splitter returns the configured word splitter, defaulting to
// NoSplit.
func (o *Options) splitter() WordSplitter {
	if o.WordSplitter == nil {
		return NoSplit{}
	}
	return o.WordSplitter
}

// algorithm returns the configured wrap algorithm, defaulting to
// optimal fit with DefaultPenalties.
func (o *Options) algorithm() WrapAlgorithm {
	if o.WrapAlgorithm == nil {
		return &OptimalFit{Penalties: DefaultPenalties()}
	}
	return o.WrapAlgorithm
}
