// Package tui provides the interactive terminal form for oxicosto.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/larenas/oxicosto/internal/config"
	"github.com/larenas/oxicosto/internal/entry"
	"github.com/larenas/oxicosto/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEdit        // Editing the focused cell with a text input
)

// Editable columns, in cursor order. The No., Min and Costo columns are
// derived and cannot be focused.
const (
	ColStart = iota
	ColEnd
	ColFlow
	colCount
)

// Position represents the focused cell.
type Position struct {
	Row int // Index into the entry list
	Col int // ColStart, ColEnd or ColFlow
}

// Model is the main TUI model.
type Model struct {
	config *config.Config

	// Session state. The list owns the entries; the category only affects
	// how costs are derived from them.
	list     *entry.List
	category entry.Category

	theme  *theme.Theme
	styles *Styles

	cursor Position
	mode   Mode
	input  textinput.Model

	width  int
	height int

	statusMsg string
}

// New creates a new TUI model.
func New(cfg *config.Config) Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 12
	ti.PlaceholderStyle = styles.Placeholder
	ti.TextStyle = styles.InputText
	ti.PromptStyle = styles.InputText

	return Model{
		config:   cfg,
		list:     entry.NewList(),
		category: cfg.Category(),
		theme:    t,
		styles:   styles,
		input:    ti,
		mode:     ModeNormal,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the TUI.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
