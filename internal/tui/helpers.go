package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// truncate clips a line to the given display width, ANSI-aware.
// A non-positive width means the terminal size is unknown; leave the
// line alone rather than clipping to nothing.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	return m.width - 2
}
