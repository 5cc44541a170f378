package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selftalk/internal/domain"
)

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTemplatesCommandListsCatalog(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "templates", "--locale", "en")
	require.NoError(t, err)

	assert.Contains(t, out, "Stop smoking")
	assert.Contains(t, out, "21-day smoke-free plan")
	assert.Contains(t, out, "quit-smoking-21")
	assert.Contains(t, out, "Coming soon")
}

func TestTemplatesCommandLocaleFlag(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "templates", "--locale", "zh")
	require.NoError(t, err)

	assert.Contains(t, out, "戒烟")
	assert.Contains(t, out, "即将上线")
}

func TestLocaleFlagRejectsUnknown(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "templates", "--locale", "fr")
	assert.Error(t, err)
}

func TestProgressCommandSummarizesRecord(t *testing.T) {
	app := newTestApp(t)
	completed := true
	seven := 7
	app.Progress.UpdateDay(context.Background(), "quit-smoking-21", 1, domain.DayUpdate{Completed: &completed})
	app.Progress.UpdateDay(context.Background(), "quit-smoking-21", 2, domain.DayUpdate{Repetitions: &seven})

	out, err := execute(t, app, "progress", "quit-smoking-21", "--locale", "en")
	require.NoError(t, err)

	assert.Contains(t, out, "quit-smoking-21")
	assert.Contains(t, out, "5%")
	assert.Contains(t, out, "1/21")
	assert.Contains(t, out, "Day 1")
	assert.Contains(t, out, "×7")
}

func TestProgressCommandUnknownScriptNeedsDays(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "progress", "mystery-script")
	assert.Error(t, err)

	out, err := execute(t, app, "progress", "mystery-script", "--days", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "0/10")
}

func TestRecordingsCommandEmpty(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "recordings")
	require.NoError(t, err)

	assert.Contains(t, out, "no recordings yet")
}

func TestRecordingsCommandListsSaved(t *testing.T) {
	app := newTestApp(t)
	app.Locale = domain.LocaleEN
	require.NoError(t, app.Recordings.Log(context.Background(), &domain.RecordingLog{
		Locale:   domain.LocaleEN,
		Filename: "selftalk-practice-en-2026-02-01T08-00-00Z.webm",
		MimeType: "audio/webm",
		ByteSize: 2048,
	}))

	out, err := execute(t, app, "recordings", "--locale", "en")
	require.NoError(t, err)

	assert.Contains(t, out, "selftalk-practice-en-2026-02-01T08-00-00Z.webm")
	assert.Contains(t, out, "2048 bytes")
}
