// Wraptext reads text from files or standard input and writes it back
// wrapped to a target width.
//
// Usage:
//
//	wraptext [flags] [file ...]
//
// Without a width flag the output follows the width of the terminal.
// Hyphenation uses TeX-style pattern files, for example hyph-en-us.pat.txt
// from the hyph-utf8 project:
//
//	wraptext --width 40 --hyphenate hyph-en-us.pat.txt README.md
package main

import (
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/speedata/hyphenation"
	flag "github.com/spf13/pflag"

	"github.com/scalecode-solutions/textwrap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "wraptext:", err)
		os.Exit(1)
	}
}

func run() error {
	width := flag.IntP("width", "w", 0, "target line width in columns, 0 means the terminal width")
	algorithm := flag.StringP("algorithm", "a", "optimal", "wrap algorithm: first or optimal")
	separator := flag.StringP("separator", "s", "ascii", "word separator: ascii or unicode")
	breakWords := flag.BoolP("break-words", "b", false, "break words wider than a whole line")
	initialIndent := flag.String("initial-indent", "", "prefix of the first output line")
	subsequentIndent := flag.String("subsequent-indent", "", "prefix of every output line after the first")
	crlf := flag.Bool("crlf", false, "join lines with \\r\\n instead of \\n")
	patternFile := flag.String("hyphenate", "", "hyphenate words using the given TeX pattern `file`")
	flag.Parse()

	opts := textwrap.NewOptions(*width)
	if *width == 0 {
		opts.Width = textwrap.TerminalWidth()
	}
	opts.BreakWords = *breakWords
	opts.InitialIndent = *initialIndent
	opts.SubsequentIndent = *subsequentIndent
	if *crlf {
		opts.LineEnding = textwrap.CRLF
	}

	switch *algorithm {
	case "optimal":
	case "first":
		opts.WrapAlgorithm = textwrap.FirstFit{}
	default:
		return fmt.Errorf("unknown algorithm %q", *algorithm)
	}

	switch *separator {
	case "ascii":
	case "unicode":
		opts.WordSeparator = textwrap.UnicodeBreakProperties{}
	default:
		return fmt.Errorf("unknown separator %q", *separator)
	}

	if *patternFile != "" {
		splitter, err := loadHyphenator(*patternFile)
		if err != nil {
			return err
		}
		opts.WordSplitter = splitter
	}

	if flag.NArg() == 0 {
		return wrapTo(os.Stdout, os.Stdin, opts)
	}
	for _, name := range flag.Args() {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = wrapTo(os.Stdout, f, opts)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func wrapTo(w io.Writer, r io.Reader, opts *textwrap.Options) error {
	text, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	filled, err := textwrap.Fill(string(text), opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, filled)
	return err
}

// loadHyphenator turns a TeX hyphenation pattern file into a word
// splitter. Pattern positions count runes, while split points count
// bytes, so the positions are translated per word.
func loadHyphenator(path string) (textwrap.WordSplitter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lang, err := hyphenation.New(f)
	if err != nil {
		return nil, fmt.Errorf("loading patterns from %s: %w", path, err)
	}

	return textwrap.SplitFunc(func(word string) []int {
		for _, r := range word {
			if !unicode.IsLetter(r) {
				return nil
			}
		}
		var points []int
		offset := 0
		prev := 0
		for _, pos := range lang.Hyphenate(word) {
			for ; prev < pos && offset < len(word); prev++ {
				_, size := utf8.DecodeRuneInString(word[offset:])
				offset += size
			}
			if offset > 0 && offset < len(word) {
				points = append(points, offset)
			}
		}
		return points
	}), nil
}
