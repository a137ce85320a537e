package textwrap

import "strings"

// Wrap breaks text into lines no wider than opts.Width display
// columns and returns them without trailing newlines. Existing line
// breaks in the input ("\n" or "\r\n") are kept: every input line is
// wrapped on its own, and empty input lines stay empty. Wrapping an
// empty string yields no lines at all.
//
// The only possible error is an invalid configuration; once the
// options validate, Wrap always returns a complete result. The call is
// pure and reentrant, so concurrent use needs no coordination.
func Wrap(text string, opts *Options) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		wrapLine(strings.TrimSuffix(line, "\r"), opts, &lines)
	}
	return lines, nil
}

// Fill wraps text like Wrap and joins the result with the configured
// line ending.
func Fill(text string, opts *Options) (string, error) {
	lines, err := Wrap(text, opts)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, opts.LineEnding.String()), nil
}

// wrapLine wraps a single input line and appends the output lines,
// indented, to out.
func wrapLine(line string, opts *Options, out *[]string) {
	initialWidth := opts.Width - DisplayWidth(opts.InitialIndent)
	subsequentWidth := opts.Width - DisplayWidth(opts.SubsequentIndent)

	// The initial indent belongs to the first output line of the
	// whole text, not of each input line.
	widths := LineWidths{First: max(subsequentWidth, 0), Rest: max(subsequentWidth, 0)}
	if len(*out) == 0 {
		widths.First = max(initialWidth, 0)
	}

	frags := opts.separator().Separate(line)
	wrapped := opts.algorithm().Wrap(frags, widths, opts.splitter(), opts.BreakWords)
	if len(wrapped) == 0 {
		// Blank input line; blank lines are never indented.
		*out = append(*out, "")
		return
	}
	for _, fragments := range wrapped {
		text := assembleLine(fragments)
		if text != "" {
			text = indentFor(opts, len(*out)) + text
		}
		*out = append(*out, text)
	}
}

// assembleLine renders one output line: every fragment but the last
// contributes its word and whitespace, the last contributes its word
// and penalty. This drops the trailing whitespace of the line and
// materializes a hyphen only where the break happened.
func assembleLine(frags []Fragment) string {
	var b strings.Builder
	for k, f := range frags {
		b.WriteString(f.Word)
		if k+1 < len(frags) {
			b.WriteString(f.Whitespace)
		} else {
			b.WriteString(f.Penalty)
		}
	}
	return b.String()
}

func indentFor(opts *Options, lineNumber int) string {
	if lineNumber == 0 {
		return opts.InitialIndent
	}
	return opts.SubsequentIndent
}
