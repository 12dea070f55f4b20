package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/larenas/oxicosto/internal/entry"
)

func (a *App) calcCmd() *cobra.Command {
	var (
		start    string
		end      string
		flow     string
		category string
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calcula la duración y el costo de un intervalo",
		Long: `Calcula los minutos y el costo de un solo intervalo de suministro.

Las horas se aceptan en notación de 12 o 24 horas. Un intervalo cuyo
fin es anterior al inicio se interpreta como un cruce de medianoche.

Example:
  oxicosto calc --start="11:00 PM" --end="1:00 AM" --flow=2`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			cat := a.config.Category()
			if category != "" {
				parsed, err := entry.ParseCategory(category)
				if err != nil {
					return err
				}
				cat = parsed
			}

			e := entry.Entry{StartTime: start, EndTime: end, FlowRate: flow}
			row := entry.Compute(e, cat.Factor())

			if !intervalParseable(start, end) {
				fmt.Println(formatWarning("Intervalo no calculable: revise las horas ingresadas."))
			}

			fmt.Printf("Duración: %s\n", formatHeader(FormatDuration(row.Minutes)))
			fmt.Printf("Costo:    %s %s\n",
				formatMoney(fmt.Sprintf("$%.2f", row.Cost)),
				formatMuted(fmt.Sprintf("(factor %.2f, %s)", cat.Factor(), cat)),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Hora de inicio (requerida)")
	cmd.Flags().StringVar(&end, "end", "", "Hora de fin (requerida)")
	cmd.Flags().StringVar(&flow, "flow", "", "Flujo en L/min")
	cmd.Flags().StringVar(&category, "category", "", "Régimen: contributivo o subsidiado")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// intervalParseable reports whether both endpoints of an interval parse as
// clock times. A zero-length interval is still a computable one; only a
// failed parse warrants a warning.
func intervalParseable(start, end string) bool {
	_, startOK := entry.ParseClockTime(start)
	_, endOK := entry.ParseClockTime(end)
	return startOK && endOK
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}
