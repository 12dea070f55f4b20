package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/larenas/oxicosto/internal/entry"
)

func (a *App) summaryCmd() *cobra.Command {
	var (
		category string
		copyFlag bool
	)

	cmd := &cobra.Command{
		Use:   "summary [archivo]",
		Short: "Genera el resumen de costos para compartir",
		Long: `Genera el resumen en texto plano a partir de registros leídos de un
archivo o de la entrada estándar, uno por línea:

  inicio,fin,flujo

Las líneas vacías y las que empiezan con # se ignoran. Registros con
horas faltantes o inválidas aparecen en la tabla interactiva pero se
omiten del resumen.

Example:
  echo "7:00 AM,8:00 AM,2" | oxicosto summary --copy`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cat := a.config.Category()
			if category != "" {
				parsed, err := entry.ParseCategory(category)
				if err != nil {
					return err
				}
				cat = parsed
			}

			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening entries file: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			entries, err := ParseEntries(in)
			if err != nil {
				return err
			}

			factor := cat.Factor()
			text := entry.BuildSummary(entries, entry.TotalCost(entries, factor), factor, cat)
			printRule()
			fmt.Print(text)
			printRule()

			if copyFlag {
				if err := clipboard.WriteAll(text); err != nil {
					// The summary is already printed; copying is best effort.
					fmt.Println(formatWarning(fmt.Sprintf("No se pudo copiar al portapapeles: %v", err)))
					return nil
				}
				fmt.Println(formatMuted("Resumen copiado al portapapeles."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Régimen: contributivo o subsidiado")
	cmd.Flags().BoolVar(&copyFlag, "copy", false, "Copia el resumen al portapapeles")

	return cmd
}

// ParseEntries reads "inicio,fin,flujo" lines into entries. Missing fields
// are left empty; they degrade to zero minutes or zero cost downstream
// instead of failing the whole file.
func ParseEntries(r io.Reader) ([]entry.Entry, error) {
	var entries []entry.Entry

	scanner := bufio.NewScanner(r)
	var id int64
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, ",", 3)
		id++
		e := entry.Entry{ID: id}
		if len(parts) > 0 {
			e.StartTime = strings.TrimSpace(parts[0])
		}
		if len(parts) > 1 {
			e.EndTime = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			e.FlowRate = strings.TrimSpace(parts[2])
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}

	return entries, nil
}
