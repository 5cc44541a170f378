package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"selftalk/internal/cli/formatter"
	"selftalk/internal/locale"
)

func copyFor(app *App) locale.Copy {
	return locale.For(app.Locale)
}

func newProgressCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "progress <script-id>",
		Short: "Print the completion summary for a practice script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scriptID := args[0]

			totalDays := days
			if totalDays <= 0 {
				if doc := app.Plans.Script(cmd.Context(), scriptID); doc != nil {
					totalDays = len(doc.Days)
				}
			}
			if totalDays <= 0 {
				return fmt.Errorf("unknown script %q: pass --days to size the plan", scriptID)
			}

			record := app.Progress.Get(cmd.Context(), scriptID)
			percent := app.Progress.CompletionPercent(record, totalDays)
			cp := copyFor(app)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(scriptID))
			fmt.Fprintf(out, "%s  %d/%d\n", formatter.RenderProgress(percent, 24), record.CompletedDays(), totalDays)

			mark := formatter.Checkbox(record.Reminder)
			fmt.Fprintf(out, "%s %s\n", mark, cp.ReminderLabel)

			tracked := make([]int, 0, len(record.Days))
			for day := range record.Days {
				tracked = append(tracked, day)
			}
			sort.Ints(tracked)
			for _, day := range tracked {
				entry := record.Days[day]
				line := fmt.Sprintf("%s %s", formatter.Checkbox(entry.Completed), cp.DayLabel(day))
				if entry.Repetitions != nil {
					line += formatter.StyleYellow.Render(fmt.Sprintf(" ×%d", *entry.Repetitions))
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "plan length override when the script cannot be fetched")
	return cmd
}
