package entry

import (
	"fmt"
	"strings"
)

// SummaryTitle is the first line of the shareable summary.
const SummaryTitle = "Resumen de Consumo de Oxígeno"

const summaryHeader = "No. | Inicio | Fin | L/min | Min | Costo"

// BuildSummary renders the entries as a fixed-format, line-oriented text
// table for sharing. Entries whose computed duration is zero are omitted;
// callers that transmit the result must treat it as opaque UTF-8 text.
func BuildSummary(entries []Entry, total float64, factor float64, cat Category) string {
	var b strings.Builder

	b.WriteString(SummaryTitle + "\n")
	b.WriteString("\n")
	b.WriteString(summaryHeader + "\n")
	b.WriteString(strings.Repeat("-", len(summaryHeader)) + "\n")

	row := 0
	for _, e := range entries {
		computed := Compute(e, factor)
		if computed.Minutes <= 0 {
			continue
		}
		row++

		cost := "-"
		if computed.Cost > 0 {
			cost = fmt.Sprintf("%.2f", computed.Cost)
		}
		fmt.Fprintf(&b, "%d | %s | %s | %s | %d | %s\n",
			row,
			orDash(e.StartTime),
			orDash(e.EndTime),
			orDash(e.FlowRate),
			computed.Minutes,
			cost,
		)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Total a Pagar: $%.2f\n", total)
	fmt.Fprintf(&b, "Factor: %.2f (%s)\n", factor, cat)

	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
