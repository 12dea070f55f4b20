package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/larenas/oxicosto/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorMoney       lipgloss.Color
	colorWarning     lipgloss.Color

	Title lipgloss.Style

	Header       lipgloss.Style
	Cell         lipgloss.Style
	CellSelected lipgloss.Style
	CellDerived  lipgloss.Style
	Border       lipgloss.Style

	Total    lipgloss.Style
	Category lipgloss.Style

	InputText   lipgloss.Style
	Placeholder lipgloss.Style
	InputBox    lipgloss.Style

	Status lipgloss.Style
	Help   lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}

	s.colorBg = theme.Color(t.Bg)
	s.colorBgHighlight = theme.Color(t.BgHighlight)
	s.colorBgSelection = theme.Color(t.BgSelection)
	s.colorFg = theme.Color(t.Fg)
	s.colorFgMuted = theme.Color(t.FgMuted)
	s.colorAccent = theme.Color(t.Accent)
	s.colorMoney = theme.Color(t.Money)
	s.colorWarning = theme.Color(t.Warning)

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent)

	s.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBgHighlight).
		Padding(0, 1)

	s.Cell = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Padding(0, 1)

	s.CellSelected = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgSelection).
		Bold(true).
		Padding(0, 1)

	// Derived columns (No., Min, Costo) cannot be focused.
	s.CellDerived = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Padding(0, 1)

	s.Border = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	s.Total = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorMoney)

	s.Category = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.InputText = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.Placeholder = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.InputBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Padding(0, 1)

	s.Status = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Bold(true)

	s.Help = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	return s
}
