package textwrap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// spans renders fragments as word+whitespace pairs for comparison.
func spans(frags []Fragment) [][2]string {
	if len(frags) == 0 {
		return nil
	}
	out := make([][2]string, len(frags))
	for i, f := range frags {
		out[i] = [2]string{f.Word, f.Whitespace}
	}
	return out
}

func TestAsciiSpaceSeparate(t *testing.T) {
	tests := []struct {
		name string
		line string
		want [][2]string
	}{
		{"empty", "", nil},
		{"single word", "foo", [][2]string{{"foo", ""}}},
		{"two words", "foo bar", [][2]string{{"foo", " "}, {"bar", ""}}},
		{"multiple spaces", "foo   bar", [][2]string{{"foo", "   "}, {"bar", ""}}},
		{"leading whitespace", "  foo", [][2]string{{"", "  "}, {"foo", ""}}},
		{"trailing whitespace", "foo   ", [][2]string{{"foo", "   "}}},
		{"only whitespace", "   ", [][2]string{{"", "   "}}},
		{"nbsp is not a separator", "foo\u00a0bar", [][2]string{{"foo\u00a0bar", ""}}},
		{"tab is not a separator", "foo\tbar", [][2]string{{"foo\tbar", ""}}},
		{"hyphens stay in words", "foo-bar baz", [][2]string{{"foo-bar", " "}, {"baz", ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spans(AsciiSpace{}.Separate(tt.line))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Separate(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestUnicodeBreakPropertiesSeparate(t *testing.T) {
	tests := []struct {
		name string
		line string
		want [][2]string
	}{
		{"empty", "", nil},
		{"two words", "foo bar", [][2]string{{"foo", " "}, {"bar", ""}}},
		{"cjk breaks between ideographs", "你好世界", [][2]string{{"你", ""}, {"好", ""}, {"世", ""}, {"界", ""}}},
		{"nbsp keeps words together", "foo\u00a0bar", [][2]string{{"foo\u00a0bar", ""}}},
		{"no break after hyphen", "foo-bar", [][2]string{{"foo-bar", ""}}},
		{"mixed scripts", "Hello 你好", [][2]string{{"Hello", " "}, {"你", ""}, {"好", ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spans(UnicodeBreakProperties{}.Separate(tt.line))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Separate(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestUnicodeBreakPropertiesSkipsEscapes(t *testing.T) {
	frags := UnicodeBreakProperties{}.Separate("\x1b[31mfoo\x1b[0m bar")
	if len(frags) != 2 {
		t.Fatalf("got %d fragments %v, want 2", len(frags), words(frags))
	}
	if frags[0].Word != "\x1b[31mfoo\x1b[0m" {
		t.Errorf("first word = %q, want escapes attached", frags[0].Word)
	}
	if frags[0].Width() != 3 {
		t.Errorf("first width = %d, want 3", frags[0].Width())
	}
	if frags[1].Word != "bar" {
		t.Errorf("second word = %q, want %q", frags[1].Word, "bar")
	}
}

func TestSeparatorsCoverLine(t *testing.T) {
	lines := []string{
		"The quick brown fox",
		"  leading and trailing  ",
		"你好，世界！",
		"foo-bar --baz",
	}
	separators := map[string]WordSeparator{
		"ascii":   AsciiSpace{},
		"unicode": UnicodeBreakProperties{},
	}

	for name, sep := range separators {
		for _, line := range lines {
			var rebuilt string
			for _, f := range sep.Separate(line) {
				rebuilt += f.Word + f.Whitespace
			}
			if rebuilt != line {
				t.Errorf("%s separator loses text: %q became %q", name, line, rebuilt)
			}
		}
	}
}
