package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/glossa/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func sampleChanges() []m.Change {
	return []m.Change{
		{Line: 1, Name: "ERROR_MSG", Original: "Error: Please wait", Result: "Zed: Plz wayt"},
		{Line: 2, Name: "DB_HOST", Original: "error_host", Skip: m.SkipName},
		{Line: 3, Original: "", Skip: m.SkipContent},
		{Line: 4, Name: "HELLO", Original: "Nothing to see", Skip: m.SkipUnchanged},
	}
}

func TestSimpleUI_DisplayChange(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayChange("in.py", m.Change{Original: "Error:\nPlease wait", Result: "Zed:\nPlz wayt"})

	assert.Equal(t, "[OK] Translated: Error:\\nPlease wait -> Zed:\\nPlz wayt\n", buf.String())
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplaySummary(m.Report{Output: "bot_OUT.py", Translated: 3, Skipped: 7}))

	assert.Equal(t, "\nDone. Translated: 3, Skipped: 7\nWritten: bot_OUT.py\n", buf.String())
}

func TestSimpleUI_DisplayScan_PrintsTable(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayScan("bot.py", sampleChanges()))

	output := buf.String()
	for _, want := range []string{
		"bot.py",
		"ERROR_MSG",
		"translate",
		"skip: name",
		"skip: content",
		"skip: no match",
		"1 TO TRANSLATE",
		"3 SKIPPED",
	} {
		assert.Containsf(t, output, want, "output:\n%s", output)
	}
}

func TestSimpleUI_DisplayScan_Empty(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayScan("empty.py", nil))

	assert.Equal(t, "empty.py: no string literals found\n", buf.String())
}

func TestSimpleUI_DisplayLanguages(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayLanguages([]m.Language{
		{Code: "ar", Name: "Arabic", Entries: 140},
		{Code: "ru", Name: "Russian", Entries: 141},
	}))

	output := buf.String()
	assert.Contains(t, output, "CODE")
	assert.Contains(t, output, "Arabic")
	assert.Contains(t, output, "141")
	assert.Less(t, strings.Index(output, "ar "), strings.Index(output, "ru "))
}

func TestSimpleUI_DisplayReports(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayReports(nil))
	assert.Equal(t, "No reports found\n", buf.String())

	buf.Reset()

	require.NoError(t, ui.DisplayReports([]m.Report{{
		RunID:      "0123456789abcdef",
		Source:     "bot.py",
		Lang:       "ru",
		Translated: 2,
		Skipped:    5,
		CreatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}}))

	output := buf.String()
	assert.Contains(t, output, "01234567")
	assert.NotContains(t, output, "0123456789abcdef")
	assert.Contains(t, output, "bot.py")
	assert.Contains(t, output, "ru")
}
