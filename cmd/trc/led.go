package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Neumenon/tribble/tribble"
)

var (
	wordStyle = lipgloss.NewStyle().Bold(true).Width(8)
	wireStyle = lipgloss.NewStyle().Faint(true).Width(10)
	posStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	zeroStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // grey
	negStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
)

// renderVocabRow renders one vocabulary entry: bold word, faint wire
// form, colored LED glyphs.
func renderVocabRow(word, wire string) string {
	return fmt.Sprintf("%s %s %s",
		wordStyle.Render(word),
		wireStyle.Render(wire),
		renderLEDs(wire),
	)
}

// renderLEDs colors each symbol like the LED it would light.
func renderLEDs(symbols string) string {
	var b strings.Builder
	for _, r := range tribble.ToLED(symbols) {
		s := string(r)
		switch r {
		case '🔴':
			s = posStyle.Render(s)
		case '🟢':
			s = negStyle.Render(s)
		case '⚫':
			s = zeroStyle.Render(s)
		}
		b.WriteString(s)
	}
	return b.String()
}
