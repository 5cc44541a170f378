package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"selftalk/internal/cli/formatter"
	"selftalk/internal/domain"
	"selftalk/internal/plandata"
	"selftalk/internal/recorder"
)

// planWindow is how many day cards render around the cursor.
const planWindow = 7

func (m practiceModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderStepIndicator())
	b.WriteString("\n\n")

	if m.step < stepMax {
		if m.form != nil {
			b.WriteString(m.form.View())
		}
		if m.notice != "" {
			b.WriteString("\n" + formatter.Dim(m.notice))
		}
		b.WriteString("\n\n" + formatter.Dim(m.copy.NextLabel(m.step)+" · enter"))
		return b.String()
	}

	b.WriteString(m.renderPlan())
	return b.String()
}

// renderStepIndicator draws the 1..stepMax dots with the current step
// highlighted.
func (m practiceModel) renderStepIndicator() string {
	marks := make([]string, 0, stepMax)
	for i := 1; i <= stepMax; i++ {
		if i == m.step {
			marks = append(marks, formatter.StyleHeader.Render("●"))
		} else if i < m.step {
			marks = append(marks, formatter.StyleGreen.Render("●"))
		} else {
			marks = append(marks, formatter.StyleDim.Render("○"))
		}
	}
	title := formatter.StyleHeader.Render("selftalk")
	return fmt.Sprintf("%s  %s  %s", title, strings.Join(marks, " "),
		formatter.Dim(fmt.Sprintf("%d/%d", m.step, stepMax)))
}

func (m practiceModel) renderPlan() string {
	if m.script == nil {
		return formatter.Dim(m.copy.NoResources)
	}

	var b strings.Builder

	b.WriteString(formatter.Header(m.script.Title.ForLocale(m.app.Locale)))
	b.WriteString("\n\n")

	percent := m.app.Progress.CompletionPercent(m.progress, len(m.script.Days))
	b.WriteString(formatter.RenderProgress(percent, 24))
	b.WriteString("\n")

	b.WriteString(m.renderReminder())
	b.WriteString("\n")
	b.WriteString(m.renderRecorder())
	b.WriteString("\n\n")

	b.WriteString(m.renderDays())
	b.WriteString(m.renderLearning())

	b.WriteString("\n" + formatter.Dim(m.keys.helpLine()))
	return b.String()
}

func (m practiceModel) renderReminder() string {
	note := m.copy.ReminderOff
	mark := formatter.Checkbox(false)
	if m.progress.Reminder {
		note = m.copy.ReminderOn
		mark = formatter.Checkbox(true)
	}
	return fmt.Sprintf("%s %s %s", mark, formatter.Bold(m.copy.ReminderLabel), formatter.Dim(note))
}

// renderRecorder draws the capture panel: localized status plus the
// relevant action hints for the current state.
func (m practiceModel) renderRecorder() string {
	status := m.copy.RecorderStatus(m.recorder.Status())

	var hints []string
	switch m.recorder.State() {
	case recorder.StateIdle, recorder.StateError:
		hints = append(hints, "r "+m.copy.RecorderStart)
	case recorder.StateRecording:
		hints = append(hints, "s "+m.copy.RecorderStop)
	case recorder.StateReady:
		hints = append(hints, "r "+m.copy.RecorderStart, "d "+m.copy.RecorderSave)
	}

	line := formatter.StyleBlue.Render("♪ ") + status
	if len(hints) > 0 {
		line += "  " + formatter.Dim(strings.Join(hints, " · "))
	}
	if m.savedPath != "" {
		line += "\n  " + formatter.Dim(m.savedPath)
	}
	if m.notice != "" {
		line += "\n  " + formatter.StyleRed.Render(m.notice)
	}
	return line
}

// renderDays draws a window of day cards around the cursor.
func (m practiceModel) renderDays() string {
	days := m.script.Days
	start := m.cursor - planWindow/2
	if start > len(days)-planWindow {
		start = len(days) - planWindow
	}
	if start < 0 {
		start = 0
	}
	end := start + planWindow
	if end > len(days) {
		end = len(days)
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(formatter.Dim("  ⋮") + "\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(m.renderDayCard(days[i], i == m.cursor))
	}
	if end < len(days) {
		b.WriteString(formatter.Dim("  ⋮") + "\n")
	}
	return b.String()
}

func (m practiceModel) renderDayCard(day domain.PlanDay, selected bool) string {
	loc := m.app.Locale
	entry := m.progress.Days[day.Day]

	cursor := "  "
	if selected {
		cursor = formatter.StyleHeader.Render("▸ ")
	}

	label := formatter.Bold(m.copy.DayLabel(day.Day))
	if phase := m.script.PhaseByID(day.Phase); phase != nil {
		label += " " + formatter.StylePurple.Render(phase.Title.ForLocale(loc))
	}

	meta := ""
	if entry.Repetitions != nil {
		meta = " " + formatter.StyleYellow.Render(fmt.Sprintf("×%d", *entry.Repetitions))
	}

	head := fmt.Sprintf("%s%s %s%s\n", cursor, formatter.Checkbox(entry.Completed), label, meta)
	if !m.expanded[day.Day] {
		return head
	}

	indent := lipgloss.NewStyle().PaddingLeft(5)
	var lines []string
	appendField := func(name string, text domain.LocalizedText) {
		if text.IsEmpty() {
			return
		}
		lines = append(lines, formatter.StyleBlue.Render(name)+" "+text.ForLocale(loc))
	}
	appendField(m.copy.Affirmation, day.Affirmation)
	appendField(m.copy.Reason, day.Why)
	appendField(m.copy.Action, day.Action)
	appendField(m.copy.Recording, day.RecordingHint)

	if len(day.Prompts) > 0 {
		lines = append(lines, formatter.StyleBlue.Render(m.copy.PromptsTitle))
		for _, slot := range domain.PromptOrder {
			if text, ok := day.Prompts[slot]; ok {
				lines = append(lines, fmt.Sprintf("  %s：%s", m.copy.PromptLabel(slot), text.ForLocale(loc)))
			}
		}
		for slot, text := range day.Prompts {
			if !isKnownPrompt(slot) {
				lines = append(lines, fmt.Sprintf("  %s：%s", m.copy.PromptLabel(slot), text.ForLocale(loc)))
			}
		}
	}

	if len(day.Tags) > 0 {
		lines = append(lines, formatter.Dim(m.copy.Tags+": "+strings.Join(day.Tags, " · ")))
	}

	return head + indent.Render(strings.Join(lines, "\n")) + "\n"
}

func isKnownPrompt(slot string) bool {
	for _, known := range domain.PromptOrder {
		if slot == known {
			return true
		}
	}
	return false
}

// renderLearning lists the further-reading link for the phase under
// the cursor, when the bundled library carries one.
func (m practiceModel) renderLearning() string {
	if m.cursor >= len(m.script.Days) {
		return ""
	}
	phaseID := m.script.Days[m.cursor].Phase
	resource, ok := plandata.Learning(phaseID, m.app.Locale)
	if !ok {
		return "\n" + formatter.Dim(m.copy.NoResources) + "\n"
	}
	return fmt.Sprintf("\n%s %s %s\n",
		formatter.Bold(m.copy.LearningHeading),
		resource.Title,
		formatter.Dim(resource.URL))
}
