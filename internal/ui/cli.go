// Package ui implements the oxicosto command-line interface.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/larenas/oxicosto/internal/config"
	"github.com/larenas/oxicosto/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "oxicosto",
		Short: "Registro y costo de consumo de oxígeno domiciliario",
		Long: `Oxicosto registra intervalos de suministro de oxígeno con su flujo
y calcula el costo a pagar según el régimen de aseguramiento
(contributivo o subsidiado).

Sin argumentos abre la tabla interactiva.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.calcCmd())
	a.root.AddCommand(a.summaryCmd())
	a.root.AddCommand(a.configCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("oxicosto %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
