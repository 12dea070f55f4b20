package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Money amounts: green for totals and costs
	colorMoney = color.New(color.FgGreen, color.Bold)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Warnings: yellow for degraded results and notices
	colorWarning = color.New(color.FgYellow)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// printRule prints a muted horizontal rule across the terminal.
func printRule() {
	width := termWidth()
	if width > 60 {
		width = 60
	}
	fmt.Println(formatMuted(strings.Repeat("─", width)))
}

// formatMoney formats text for money amounts.
func formatMoney(s string) string {
	return colorMoney.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatWarning formats text as a warning/notice.
func formatWarning(s string) string {
	return colorWarning.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
