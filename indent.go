package textwrap

import (
	"strings"
	"unicode"
)

// Indent adds prefix to the start of each non-blank line of s. Lines
// consisting only of whitespace are kept unchanged, as is any leading
// or trailing whitespace of the other lines:
//
//	Indent("first\n\nsecond", "  ")  // "  first\n\n  second"
func Indent(s, prefix string) string {
	var b strings.Builder
	b.Grow(len(s) + len(prefix))
	for idx, line := range strings.Split(s, "\n") {
		if idx > 0 {
			b.WriteByte('\n')
		}
		if strings.TrimSpace(line) != "" {
			b.WriteString(prefix)
		}
		b.WriteString(line)
	}
	return b.String()
}

// Dedent removes the longest whitespace prefix common to all non-blank
// lines of s:
//
//	Dedent("    first\n      second")  // "first\n  second"
func Dedent(s string) string {
	lines := strings.Split(s, "\n")

	prefix := ""
	seen := false
	for _, line := range lines {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if trimmed == "" {
			continue
		}
		head := line[:len(line)-len(trimmed)]
		if !seen {
			prefix = head
			seen = true
			continue
		}
		prefix = commonPrefix(prefix, head)
	}
	if prefix == "" {
		return s
	}

	for idx, line := range lines {
		lines[idx] = strings.TrimPrefix(line, prefix)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
