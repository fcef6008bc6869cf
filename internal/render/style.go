package render

import (
	"github.com/charmbracelet/lipgloss"

	"termhex/internal/classify"
)

type Styles struct {
	Categories [classify.Other + 1]lipgloss.Style
	Normal     lipgloss.Style
	Status     lipgloss.Style
	Message    lipgloss.Style
	Error      lipgloss.Style
	HelpTitle  lipgloss.Style
}

func NewStyles(r *lipgloss.Renderer) *Styles {
	s := &Styles{
		Normal: r.NewStyle(),
		Status: r.NewStyle().
			Background(lipgloss.Color("7")).
			Foreground(lipgloss.Color("0")),
		Message: r.NewStyle().
			Background(lipgloss.Color("7")).
			Foreground(lipgloss.Color("4")),
		Error: r.NewStyle().
			Background(lipgloss.Color("7")).
			Foreground(lipgloss.Color("1")).
			Bold(true),
		HelpTitle: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
	}
	for c := range s.Categories {
		s.Categories[c] = r.NewStyle().Foreground(classify.Category(c).Color())
	}
	return s
}

func DefaultStyles() *Styles {
	return NewStyles(lipgloss.DefaultRenderer())
}

func (s *Styles) Category(c classify.Category) lipgloss.Style {
	if c < 0 || int(c) >= len(s.Categories) {
		return s.Normal
	}
	return s.Categories[c]
}
