package textwrap

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the column count of the terminal connected to
// standard output, or 80 when there is no terminal to ask. Callers
// wanting output that follows the terminal can pass the result as the
// width of their Options; the wrapping engine itself never consults
// the terminal.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
