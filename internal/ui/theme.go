// Package ui holds the terminal styles used by pretty output.
package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Create   lipgloss.Style
	Skip     lipgloss.Style
	External lipgloss.Style
	Card     lipgloss.Style
}

// NewTheme builds a theme whose color profile matches w. Writers that are not
// terminals get plain text.
func NewTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	return Theme{
		Title:    r.NewStyle().Bold(true),
		Subtitle: r.NewStyle().Faint(true),
		Label:    r.NewStyle().Faint(true),
		Create:   r.NewStyle().Foreground(lipgloss.Color("42")),
		Skip:     r.NewStyle().Foreground(lipgloss.Color("214")),
		External: r.NewStyle().Foreground(lipgloss.Color("63")),
		Card: r.NewStyle().
			PaddingLeft(2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("63")),
	}
}
