package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/larenas/oxicosto/internal/config"
	"github.com/larenas/oxicosto/internal/entry"
	"github.com/larenas/oxicosto/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  oxicosto config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	printConfig(cfg)

	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	reader := bufio.NewReader(os.Stdin)

	cfg.Billing.DefaultCategory = promptCategory(reader, cfg.Billing.DefaultCategory)
	cfg.UI.Theme = promptTheme(reader, cfg.UI.Theme)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[billing]")
	fmt.Printf("  default_category = %s\n", cfg.Billing.DefaultCategory)
	fmt.Println("\n[ui]")
	fmt.Printf("  theme            = %s\n", cfg.UI.Theme)
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptCategory(reader *bufio.Reader, current string) string {
	for {
		value := strings.ToLower(promptValue(reader, "Default category (contributivo, subsidiado)", current))
		if _, err := entry.ParseCategory(value); err == nil {
			return value
		}
		fmt.Printf("  Invalid category %q. Available: contributivo, subsidiado\n", value)
	}
}

func promptTheme(reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Printf("  Invalid theme %q. Available: %s\n", value, options)
	}
}
