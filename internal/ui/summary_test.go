package ui

import (
	"strings"
	"testing"
)

func TestParseEntries(t *testing.T) {
	input := `
# turno de la mañana
7:00 AM,8:00 AM,2
8:00 AM,8:30 AM,3

14:30,,1.5
solo inicio
`
	entries, err := ParseEntries(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseEntries: %v", err)
	}

	if len(entries) != 4 {
		t.Fatalf("parsed %d entries, want 4", len(entries))
	}

	first := entries[0]
	if first.StartTime != "7:00 AM" || first.EndTime != "8:00 AM" || first.FlowRate != "2" {
		t.Errorf("first entry = %+v, want 7:00 AM / 8:00 AM / 2", first)
	}

	// Missing fields stay empty and degrade downstream, not here.
	third := entries[2]
	if third.StartTime != "14:30" || third.EndTime != "" || third.FlowRate != "1.5" {
		t.Errorf("third entry = %+v, want 14:30 / empty / 1.5", third)
	}

	fourth := entries[3]
	if fourth.StartTime != "solo inicio" || fourth.EndTime != "" {
		t.Errorf("fourth entry = %+v, want raw text kept in start", fourth)
	}

	for i, e := range entries {
		if e.ID == 0 {
			t.Errorf("entry %d has zero ID", i)
		}
	}
}

func TestParseEntriesEmptyInput(t *testing.T) {
	entries, err := ParseEntries(strings.NewReader("\n# nada\n\n"))
	if err != nil {
		t.Fatalf("ParseEntries: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("parsed %d entries, want 0", len(entries))
	}
}

func TestIntervalParseable(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{name: "normal interval", start: "7:00 AM", end: "8:00 AM", want: true},
		{name: "zero-length interval", start: "7:00 AM", end: "7:00 AM", want: true},
		{name: "midnight wrap", start: "11:00 PM", end: "1:00 AM", want: true},
		{name: "bad start", start: "25:00", end: "8:00 AM", want: false},
		{name: "empty end", start: "7:00 AM", end: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := intervalParseable(tt.start, tt.end)
			if got != tt.want {
				t.Errorf("intervalParseable(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{name: "zero", minutes: 0, want: "0m"},
		{name: "minutes only", minutes: 45, want: "45m"},
		{name: "exact hours", minutes: 120, want: "2h"},
		{name: "hours and minutes", minutes: 150, want: "2h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDuration(tt.minutes)
			if got != tt.want {
				t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
			}
		})
	}
}
