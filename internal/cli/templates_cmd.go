package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"selftalk/internal/cli/formatter"
)

func newTemplatesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available practice templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			meta := app.Plans.Metadata(cmd.Context())
			if meta == nil || len(meta.Categories) == 0 {
				return fmt.Errorf("no template metadata available")
			}

			cp := copyFor(app)
			out := cmd.OutOrStdout()
			for _, category := range meta.Categories {
				fmt.Fprintln(out, formatter.Header(category.Title.ForLocale(app.Locale)))
				fmt.Fprintln(out, formatter.Dim(cp.PathwayLabel(category.Pathway)))
				for _, tpl := range category.Templates {
					line := "  " + tpl.Label.ForLocale(app.Locale)
					if badge := cp.TemplateBadge(tpl.Status); badge != "" {
						line += " " + formatter.Badge(badge)
					}
					if tpl.Ready() {
						line += " " + formatter.Dim("("+tpl.Script+")")
					}
					fmt.Fprintln(out, line)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
