package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newPracticeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "practice",
		Short: "Open the three-step practice wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPractice(app)
		},
	}
}

func runPractice(app *App) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("the practice wizard needs an interactive terminal; see 'selftalk templates' for a plain listing")
	}

	model := newPracticeModel(app)
	program := tea.NewProgram(model, tea.WithAltScreen())
	model.attach(program)

	_, err := program.Run()
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}
	return nil
}
