package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"selftalk/internal/domain"
	"selftalk/internal/recorder"
)

func TestForFallsBackToEnglish(t *testing.T) {
	c := For(domain.Locale("fr"))
	assert.Equal(t, "Day %d", c.DayLabelFormat)
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "第 3 天", For(domain.LocaleZH).DayLabel(3))
	assert.Equal(t, "Day 14", For(domain.LocaleEN).DayLabel(14))
}

func TestNextLabelClamps(t *testing.T) {
	c := For(domain.LocaleEN)
	assert.Equal(t, "Next Step", c.NextLabel(1))
	assert.Equal(t, "See Plan", c.NextLabel(2))
	assert.Equal(t, "Start Practice", c.NextLabel(3))
	assert.Equal(t, "Start Practice", c.NextLabel(9))
	assert.Equal(t, "Next Step", c.NextLabel(0))
}

func TestPromptLabelFallsBackToDefault(t *testing.T) {
	c := For(domain.LocaleZH)
	assert.Equal(t, "早晨提醒", c.PromptLabel("morning"))
	assert.Equal(t, "提醒", c.PromptLabel("midnight"))
}

func TestRecorderStatusCoversEverySignal(t *testing.T) {
	signals := []recorder.StatusSignal{
		recorder.StatusIdle,
		recorder.StatusRecording,
		recorder.StatusProcessing,
		recorder.StatusReady,
		recorder.StatusPermission,
		recorder.StatusUnsupported,
		recorder.StatusError,
		recorder.StatusInactive,
	}
	for _, loc := range domain.Locales {
		c := For(loc)
		for _, signal := range signals {
			assert.NotEmpty(t, c.RecorderStatus(signal), "%s/%s", loc, signal)
		}
	}
}

func TestTemplateBadge(t *testing.T) {
	c := For(domain.LocaleEN)
	assert.Equal(t, "Coming soon", c.TemplateBadge(domain.TemplateStatusComingSoon))
	assert.Equal(t, "Custom", c.TemplateBadge(domain.TemplateStatusCustom))
	assert.Empty(t, c.TemplateBadge(domain.TemplateStatusReady))
}
