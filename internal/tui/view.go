package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/larenas/oxicosto/internal/entry"
)

var tableHeaders = []string{"No.", "Inicio", "Fin", "L/min", "Min", "Costo"}

// View renders the entry table, totals, and footer.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Oxicosto — registro de oxígeno"))
	b.WriteString("\n\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(m.renderTotals())
	b.WriteString("\n")

	if m.mode == ModeEdit {
		label := editLabel(m.cursor.Col)
		b.WriteString("\n")
		b.WriteString(m.styles.InputBox.Render(label + " " + m.input.View()))
		b.WriteString("\n")
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Status.Render(truncate(m.statusMsg, m.contentWidth())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.helpText()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderTable() string {
	rows, selected := m.tableRows()

	t := table.New().
		Headers(tableHeaders...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(m.styles.Border).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return m.styles.Header
			}
			if m.mode == ModeNormal && row == selected.Row && col == selected.Col {
				return m.styles.CellSelected
			}
			// No., Min and Costo are derived, not editable.
			if col == 0 || col >= 4 {
				return m.styles.CellDerived
			}
			return m.styles.Cell
		})

	return t.Render()
}

// tableRows builds the string grid and translates the cursor into table
// coordinates (editable columns start at table column 1).
func (m Model) tableRows() ([][]string, Position) {
	factor := m.category.Factor()
	entries := m.list.Entries()

	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		computed := entry.Compute(e, factor)
		cost := "-"
		if computed.Cost > 0 {
			cost = fmt.Sprintf("%.2f", computed.Cost)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			orDash(e.StartTime),
			orDash(e.EndTime),
			orDash(e.FlowRate),
			fmt.Sprintf("%d", computed.Minutes),
			cost,
		})
	}

	return rows, Position{Row: m.cursor.Row, Col: m.cursor.Col + 1}
}

func (m Model) renderTotals() string {
	entries := m.list.Entries()
	factor := m.category.Factor()
	total := entry.TotalCost(entries, factor)

	totalText := m.styles.Total.Render(fmt.Sprintf("Total a Pagar: $%.2f", total))
	categoryText := m.styles.Category.Render(fmt.Sprintf("Factor: %.2f (%s)", factor, m.category))
	return totalText + "   " + categoryText
}

func (m Model) helpText() string {
	if m.mode == ModeEdit {
		return "Enter: guardar  Esc: cancelar"
	}
	return "hjkl: mover  Enter: editar  a: agregar  x: eliminar  c: categoría  y: copiar resumen  q: salir"
}

func editLabel(col int) string {
	switch col {
	case ColEnd:
		return "Fin:"
	case ColFlow:
		return "L/min:"
	default:
		return "Inicio:"
	}
}
