// Interactive is a small terminal playground for the wrapping engine:
// it shows a sample text wrapped at an adjustable width and lets the
// wrapping options be toggled live.
//
//	←/→  adjust the width
//	a    switch between first fit and optimal fit
//	b    toggle breaking of over-wide words
//	s    switch between ASCII and Unicode word separation
//	q    quit
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scalecode-solutions/textwrap"
)

const sample = "Memory safety is a property of some programming languages " +
	"that prevents programmers from introducing certain types of bugs " +
	"related to how memory is used."

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

type model struct {
	width      int
	optimal    bool
	breakWords bool
	unicode    bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.width > 1 {
			m.width--
		}
	case "right", "l":
		m.width++
	case "a":
		m.optimal = !m.optimal
	case "b":
		m.breakWords = !m.breakWords
	case "s":
		m.unicode = !m.unicode
	}
	return m, nil
}

func (m model) View() string {
	opts := textwrap.NewOptions(m.width)
	opts.BreakWords = m.breakWords
	if !m.optimal {
		opts.WrapAlgorithm = textwrap.FirstFit{}
	}
	if m.unicode {
		opts.WordSeparator = textwrap.UnicodeBreakProperties{}
	}

	wrapped, err := textwrap.Fill(sample, opts)
	if err != nil {
		wrapped = err.Error()
	}

	var b strings.Builder
	b.WriteString(frameStyle.Width(m.width).Render(wrapped))
	b.WriteByte('\n')
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"width %d · %s · break words %v · %s separator",
		m.width, m.algorithmName(), m.breakWords, m.separatorName())))
	b.WriteString(statusStyle.Render("\n←/→ width · a algorithm · b break words · s separator · q quit"))
	b.WriteByte('\n')
	return b.String()
}

func (m model) algorithmName() string {
	if m.optimal {
		return "optimal fit"
	}
	return "first fit"
}

func (m model) separatorName() string {
	if m.unicode {
		return "Unicode"
	}
	return "ASCII"
}

func main() {
	initial := model{width: 40, optimal: true}
	if _, err := tea.NewProgram(initial).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "interactive:", err)
		os.Exit(1)
	}
}
