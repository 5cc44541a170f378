package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"selftalk/internal/cli/formatter"
)

func newRecordingsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recordings",
		Short: "List saved practice recordings",
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := app.Recordings.ListByLocale(cmd.Context(), app.Locale, limit)
			if err != nil {
				return fmt.Errorf("listing recordings: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(out, formatter.Dim("no recordings yet"))
				return nil
			}
			for _, rec := range recs {
				fmt.Fprintf(out, "%s  %s  %s\n",
					rec.CreatedAt.Format("2006-01-02 15:04"),
					formatter.Bold(rec.Filename),
					formatter.Dim(fmt.Sprintf("%s, %d bytes", rec.MimeType, rec.ByteSize)))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to list")
	return cmd
}
