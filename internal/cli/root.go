package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"selftalk/internal/domain"
	"selftalk/internal/recorder"
	"selftalk/internal/service"
)

// App holds references to all service interfaces used by CLI commands,
// plus the capture gateway the practice wizard records through.
type App struct {
	Progress   service.ProgressService
	Plans      service.PlanService
	Recordings service.RecordingLogService

	Gateway       recorder.CaptureGateway
	RecordingsDir string
	Locale        domain.Locale
}

// NewRootCmd creates the top-level "selftalk" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var localeFlag string

	root := &cobra.Command{
		Use:   "selftalk",
		Short: "Bilingual habit-change practice wizard",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if localeFlag == "" {
				return nil
			}
			loc, err := domain.ParseLocale(localeFlag)
			if err != nil {
				return fmt.Errorf("--locale: %w", err)
			}
			app.Locale = loc
			return nil
		},
		// Bare invocation opens the wizard.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPractice(app)
		},
	}
	root.PersistentFlags().StringVar(&localeFlag, "locale", "", "interface language (zh or en)")

	root.AddCommand(
		newPracticeCmd(app),
		newTemplatesCmd(app),
		newProgressCmd(app),
		newRecordingsCmd(app),
	)

	return root
}
