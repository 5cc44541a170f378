package plandata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selftalk/internal/domain"
)

func TestMetadataParses(t *testing.T) {
	meta, err := Metadata()
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.NotEmpty(t, meta.Categories)
	assert.ElementsMatch(t, []string{"break-bad-habit", "build-good-habit"}, meta.Pathways())

	tpl := meta.TemplateByID("quit-smoking")
	require.NotNil(t, tpl)
	assert.True(t, tpl.Ready())
	assert.Equal(t, "quit-smoking-21", tpl.Script)
}

func TestBundledScripts(t *testing.T) {
	doc, ok := Script("quit-smoking-21")
	require.True(t, ok)
	assert.Len(t, doc.Days, 21)
	assert.NotEmpty(t, doc.Phases)
	for _, day := range doc.Days {
		assert.False(t, day.Affirmation.IsEmpty(), "day %d has no affirmation", day.Day)
	}

	doc, ok = Script("early-riser-14")
	require.True(t, ok)
	assert.Len(t, doc.Days, 14)

	_, ok = Script("nope")
	assert.False(t, ok)
}

func TestEveryReadyTemplateHasBundledScript(t *testing.T) {
	meta, err := Metadata()
	require.NoError(t, err)
	for _, category := range meta.Categories {
		for _, tpl := range category.Templates {
			if !tpl.Ready() {
				continue
			}
			_, ok := Script(tpl.Script)
			assert.True(t, ok, "template %s references missing script %s", tpl.HabitID, tpl.Script)
		}
	}
}

func TestLearningLibrary(t *testing.T) {
	res, ok := Learning("phase-identity", domain.LocaleZH)
	require.True(t, ok)
	assert.NotEmpty(t, res.Title)
	assert.Equal(t, "/learn/identity-reset", res.URL)

	res, ok = Learning("phase-identity", domain.LocaleEN)
	require.True(t, ok)
	assert.Contains(t, res.Title, "Identity")

	_, ok = Learning("phase-unknown", domain.LocaleEN)
	assert.False(t, ok)
}
