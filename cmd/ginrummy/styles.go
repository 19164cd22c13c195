package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/ginrummy/cards"
	"github.com/lox/ginrummy/meld"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

func row(label string, value any) string {
	return fmt.Sprintf("  %s %v", labelStyle.Render(fmt.Sprintf("%-18s", label+":")), value)
}

// renderCards colours hearts and diamonds red
func renderCards(cs []cards.Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		style := blackCardStyle
		if c.IsRed() {
			style = redCardStyle
		}
		parts[i] = style.Render(c.String())
	}
	return strings.Join(parts, " ")
}

func renderMeldSet(s meld.MeldSet) string {
	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = "[" + renderCards(m) + "]"
	}
	return "[" + strings.Join(parts, " ") + "]"
}
