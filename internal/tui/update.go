package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/larenas/oxicosto/internal/entry"
)

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.mode == ModeEdit {
		return m.handleEditKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		if m.cursor.Col > 0 {
			m.cursor.Col--
		}
	case "l", "right":
		if m.cursor.Col < colCount-1 {
			m.cursor.Col++
		}
	case "j", "down":
		if m.cursor.Row < m.list.Len()-1 {
			m.cursor.Row++
		}
	case "k", "up":
		if m.cursor.Row > 0 {
			m.cursor.Row--
		}

	// Entry management
	case "a":
		added := m.list.Add()
		m.cursor.Row = m.list.Len() - 1
		if added.StartTime != "" {
			m.cursor.Col = ColEnd
			m.statusMsg = fmt.Sprintf("Registro agregado (inicio %s)", added.StartTime)
		} else {
			m.cursor.Col = ColStart
			m.statusMsg = "Registro agregado"
		}
		return m, nil

	case "x":
		entries := m.list.Entries()
		if m.cursor.Row >= len(entries) {
			return m, nil
		}
		if !m.list.Remove(entries[m.cursor.Row].ID) {
			m.statusMsg = "Se requiere al menos un registro"
			return m, nil
		}
		if m.cursor.Row >= m.list.Len() {
			m.cursor.Row = m.list.Len() - 1
		}
		m.statusMsg = "Registro eliminado"
		return m, nil

	case "c":
		if m.category == entry.CategoryContributivo {
			m.category = entry.CategorySubsidiado
		} else {
			m.category = entry.CategoryContributivo
		}
		m.statusMsg = fmt.Sprintf("Categoría: %s (factor %.2f)", m.category, m.category.Factor())
		return m, nil

	case "y":
		return m.copySummary()

	case "enter", "i":
		return m.startEdit()
	}

	return m, nil
}

// handleEditKeys handles keys while editing a cell.
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.input.Blur()
		m.input.SetValue("")
		return m, nil

	case "enter":
		return m.commitEdit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startEdit opens the text input for the focused cell.
func (m Model) startEdit() (tea.Model, tea.Cmd) {
	entries := m.list.Entries()
	if m.cursor.Row >= len(entries) {
		return m, nil
	}
	e := entries[m.cursor.Row]

	switch m.cursor.Col {
	case ColStart:
		m.input.Placeholder = "7:00 AM o 19:00"
		m.input.SetValue(e.StartTime)
	case ColEnd:
		m.input.Placeholder = "8:00 AM o 20:00"
		m.input.SetValue(e.EndTime)
	case ColFlow:
		m.input.Placeholder = "L/min"
		m.input.SetValue(e.FlowRate)
	}

	m.mode = ModeEdit
	m.statusMsg = ""
	m.input.CursorEnd()
	m.input.Focus()
	return m, textinput.Blink
}

// commitEdit writes the edited value back into the entry list.
// Times typed in either notation are normalized to the canonical 12-hour
// display form; text that does not parse is stored as typed so the user
// can see and fix it (it computes as zero minutes until then).
func (m Model) commitEdit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	entries := m.list.Entries()
	if m.cursor.Row >= len(entries) {
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil
	}
	id := entries[m.cursor.Row].ID

	field := fieldForColumn(m.cursor.Col)
	if field != entry.FieldFlowRate && value != "" {
		if minutes, ok := entry.ParseClockTime(value); ok {
			value = entry.ToDisplayString(minutes/60, minutes%60)
		} else {
			m.statusMsg = fmt.Sprintf("Hora no válida: %q", value)
		}
	}

	m.list.Update(id, field, value)
	m.mode = ModeNormal
	m.input.Blur()
	m.input.SetValue("")
	return m, nil
}

// copySummary puts the shareable summary on the system clipboard.
// A clipboard failure is a notice, never a crash: the summary remains
// available through the CLI as the manual fallback.
func (m Model) copySummary() (tea.Model, tea.Cmd) {
	entries := m.list.Entries()
	factor := m.category.Factor()
	text := entry.BuildSummary(entries, entry.TotalCost(entries, factor), factor, m.category)

	if err := clipboard.WriteAll(text); err != nil {
		m.statusMsg = fmt.Sprintf("No se pudo copiar: %v (use 'oxicosto summary')", err)
		return m, nil
	}
	m.statusMsg = "Resumen copiado al portapapeles"
	return m, nil
}

func fieldForColumn(col int) entry.Field {
	switch col {
	case ColEnd:
		return entry.FieldEndTime
	case ColFlow:
		return entry.FieldFlowRate
	default:
		return entry.FieldStartTime
	}
}
