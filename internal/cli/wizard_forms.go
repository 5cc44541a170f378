package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"selftalk/internal/cli/formatter"
)

// selftalkHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func selftalkHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// pathwayForm builds the step-1 select over the change pathways the
// metadata carries.
func (m practiceModel) pathwayForm() *huh.Form {
	if m.meta == nil {
		return nil
	}
	pathways := m.meta.Pathways()
	if len(pathways) == 0 {
		return nil
	}

	options := make([]huh.Option[string], 0, len(pathways))
	for _, p := range pathways {
		options = append(options, huh.NewOption(m.copy.PathwayLabel(p), p))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(m.copy.StepPathwayTitle).
				Options(options...).
				Value(&m.sel.pathway),
		),
	).WithTheme(selftalkHuhTheme()).WithShowHelp(false)
}

// templateForm builds the step-2 select over the chosen pathway's
// templates. Every template is listed so upcoming and custom ones stay
// visible with their badge, but only ready templates validate.
func (m practiceModel) templateForm() *huh.Form {
	if m.meta == nil {
		return nil
	}
	categories := m.meta.CategoriesForPathway(m.sel.pathway)
	if len(categories) == 0 {
		return nil
	}

	var options []huh.Option[string]
	for _, category := range categories {
		categoryLabel := category.Title.ForLocale(m.app.Locale)
		for _, tpl := range category.Templates {
			label := fmt.Sprintf("%s — %s", categoryLabel, tpl.Label.ForLocale(m.app.Locale))
			if badge := m.copy.TemplateBadge(tpl.Status); badge != "" {
				label += " " + formatter.Badge(badge)
			}
			options = append(options, huh.NewOption(label, tpl.HabitID))
		}
	}
	if len(options) == 0 {
		return nil
	}

	meta := m.meta
	copySet := m.copy
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(m.copy.StepTemplateTitle).
				Options(options...).
				Validate(func(habitID string) error {
					tpl := meta.TemplateByID(habitID)
					if tpl == nil || !tpl.Ready() {
						return fmt.Errorf("%s", copySet.BadgeComingSoon)
					}
					return nil
				}).
				Value(&m.sel.habitID),
		),
	).WithTheme(selftalkHuhTheme()).WithShowHelp(false)
}
