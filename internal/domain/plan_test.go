package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizedText_ForLocale_Fallback(t *testing.T) {
	both := LocalizedText{ZH: "戒烟", EN: "Quit smoking"}
	assert.Equal(t, "戒烟", both.ForLocale(LocaleZH))
	assert.Equal(t, "Quit smoking", both.ForLocale(LocaleEN))

	enOnly := LocalizedText{EN: "Quit smoking"}
	assert.Equal(t, "Quit smoking", enOnly.ForLocale(LocaleZH))

	zhOnly := LocalizedText{ZH: "戒烟"}
	assert.Equal(t, "戒烟", zhOnly.ForLocale(LocaleEN))

	assert.True(t, LocalizedText{}.IsEmpty())
}

func TestParseLocale(t *testing.T) {
	loc, err := ParseLocale("zh")
	require.NoError(t, err)
	assert.Equal(t, LocaleZH, loc)
	assert.Equal(t, LocaleEN, loc.Other())

	_, err = ParseLocale("fr")
	assert.Error(t, err)
}

func TestHabitMetadata_Lookups(t *testing.T) {
	meta := &HabitMetadata{Categories: []HabitCategory{
		{
			ID: "smoking", Pathway: "break-bad-habit",
			Templates: []HabitTemplate{
				{HabitID: "quit-smoking", Script: "quit-smoking-21", Status: TemplateStatusReady},
				{HabitID: "cut-caffeine", Status: TemplateStatusComingSoon},
			},
		},
		{ID: "sleep", Pathway: "build-good-habit"},
		{ID: "nails", Pathway: "break-bad-habit"},
	}}

	tpl := meta.TemplateByID("quit-smoking")
	require.NotNil(t, tpl)
	assert.True(t, tpl.Ready())

	tpl = meta.TemplateByID("cut-caffeine")
	require.NotNil(t, tpl)
	assert.False(t, tpl.Ready())

	assert.Nil(t, meta.TemplateByID("nope"))
	assert.Len(t, meta.CategoriesForPathway("break-bad-habit"), 2)
	assert.Equal(t, []string{"break-bad-habit", "build-good-habit"}, meta.Pathways())
}

func TestPlanDocument_PhaseByID(t *testing.T) {
	doc := &PlanDocument{Phases: []PlanPhase{{ID: "phase-identity"}}}
	assert.NotNil(t, doc.PhaseByID("phase-identity"))
	assert.Nil(t, doc.PhaseByID("phase-reasons"))
}
