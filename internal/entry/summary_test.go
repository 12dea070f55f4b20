package entry

import (
	"strings"
	"testing"
)

func TestBuildSummary(t *testing.T) {
	entries := []Entry{
		{ID: 1, StartTime: "7:00 AM", EndTime: "8:00 AM", FlowRate: "2"},
		{ID: 2, StartTime: "11:00 PM", EndTime: "1:00 AM", FlowRate: "1"},
	}
	factor := CategoryContributivo.Factor()
	total := TotalCost(entries, factor)

	got := BuildSummary(entries, total, factor, CategoryContributivo)
	lines := strings.Split(got, "\n")

	want := []string{
		"Resumen de Consumo de Oxígeno",
		"",
		"No. | Inicio | Fin | L/min | Min | Costo",
		strings.Repeat("-", len("No. | Inicio | Fin | L/min | Min | Costo")),
		"1 | 7:00 AM | 8:00 AM | 2 | 60 | 54.00",
		"2 | 11:00 PM | 1:00 AM | 1 | 120 | 54.00",
		"",
		"Total a Pagar: $108.00",
		"Factor: 0.45 (contributivo)",
		"",
	}

	if len(lines) != len(want) {
		t.Fatalf("summary has %d lines, want %d:\n%s", len(lines), len(want), got)
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("line %d = %q, want %q", i+1, lines[i], line)
		}
	}
}

// Entries with unset or unparseable times stay visible in the interactive
// table but are omitted from the shareable summary.
func TestBuildSummaryOmitsZeroDurationEntries(t *testing.T) {
	entries := []Entry{
		{ID: 1, StartTime: "", EndTime: "8:00 AM", FlowRate: "2"},
		{ID: 2, StartTime: "7:00 AM", EndTime: "8:00 AM", FlowRate: "2"},
		{ID: 3, StartTime: "9:00 AM", EndTime: "9:00 AM", FlowRate: "2"},
	}
	factor := CategorySubsidiado.Factor()

	got := BuildSummary(entries, TotalCost(entries, factor), factor, CategorySubsidiado)

	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "2 | ") || strings.HasPrefix(line, "3 | ") {
			t.Errorf("summary contains extra row %q, want only one:\n%s", line, got)
		}
	}
	if !strings.Contains(got, "1 | 7:00 AM | 8:00 AM | 2 | 60 | 30.00") {
		t.Errorf("summary missing the computable row:\n%s", got)
	}
	if !strings.Contains(got, "Factor: 0.25 (subsidiado)") {
		t.Errorf("summary missing factor line:\n%s", got)
	}
}

func TestBuildSummaryDashPlaceholders(t *testing.T) {
	// Duration > 0 but no flow rate: the row appears with dashes for the
	// flow and the non-positive cost.
	entries := []Entry{
		{ID: 1, StartTime: "7:00 AM", EndTime: "8:00 AM"},
	}
	factor := CategoryContributivo.Factor()

	got := BuildSummary(entries, 0, factor, CategoryContributivo)
	if !strings.Contains(got, "1 | 7:00 AM | 8:00 AM | - | 60 | -") {
		t.Errorf("summary row placeholders wrong:\n%s", got)
	}
}

func TestBuildSummaryEmptyList(t *testing.T) {
	got := BuildSummary(nil, 0, CategoryContributivo.Factor(), CategoryContributivo)

	if !strings.Contains(got, "Total a Pagar: $0.00") {
		t.Errorf("empty summary missing zero total:\n%s", got)
	}
	if strings.Contains(got, "1 |") {
		t.Errorf("empty summary contains rows:\n%s", got)
	}
}
