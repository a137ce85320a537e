package textwrap

import "fmt"

// LineEnding is the character sequence Fill joins wrapped lines with.
// The zero value is LF.
type LineEnding int

const (
	// LF is the Unix line ending "\n".
	LF LineEnding = iota
	// CRLF is the Windows line ending "\r\n".
	CRLF
)

// String returns the ending's character sequence.
func (le LineEnding) String() string {
	if le == CRLF {
		return "\r\n"
	}
	return "\n"
}

// ParseLineEnding converts "\n" or "\r\n" into the corresponding
// LineEnding.
func ParseLineEnding(s string) (LineEnding, error) {
	switch s {
	case "\n":
		return LF, nil
	case "\r\n":
		return CRLF, nil
	}
	return LF, fmt.Errorf("unsupported line ending sequence %q", s)
}
