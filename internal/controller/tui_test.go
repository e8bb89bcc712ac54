package controller

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/glossa/internal/model"
)

func TestTUI_DisplayChangeAndSummary(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	ui.DisplayChange("bot.py", m.Change{Original: "Please wait", Result: "Plz wayt"})
	require.NoError(t, ui.DisplaySummary(m.Report{Output: "bot_OUT.py", Translated: 1, Skipped: 2}))

	output := buf.String()
	assert.Contains(t, output, "[OK]")
	assert.Contains(t, output, "Please wait")
	assert.Contains(t, output, "Plz wayt")
	assert.Contains(t, output, "Done.")
	assert.Contains(t, output, "bot_OUT.py")
}

func TestTUI_SmallScanIsPrinted(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	require.NoError(t, ui.DisplayScan("bot.py", sampleChanges()))

	assert.Contains(t, buf.String(), "ERROR_MSG")
	assert.Contains(t, buf.String(), "skip: name")
}

func TestTUI_LanguagesAndReports(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	require.NoError(t, ui.DisplayLanguages([]m.Language{{Code: "hi", Name: "Hindi", Entries: 140}}))
	require.NoError(t, ui.DisplayReports(nil))

	assert.Contains(t, buf.String(), "Hindi")
	assert.Contains(t, buf.String(), "No reports found")
}

func TestAnimateScroll_Edges(t *testing.T) {
	assert.Equal(t, "", animateScroll("hello", 0, 0))
	assert.Equal(t, "hi", animateScroll("hi", 5, 0))
	assert.Equal(t, "ab…", animateScroll("abcdef", 3, 0))

	got := animateScroll("abcdef", 3, 10)
	assert.NotEqual(t, "ab…", got)
	assert.Len(t, []rune(got), 3)
}

func TestTruncateToWidth(t *testing.T) {
	assert.Equal(t, "", truncateToWidth("hello", 0))
	assert.Equal(t, "hello", truncateToWidth("hello", 10))
	assert.Equal(t, "…", truncateToWidth("hello", 1))
	assert.Equal(t, "h…", truncateToWidth("hello", 2))
	assert.Equal(t, "Ош…", truncateToWidth("Ошибка", 3))
}

func manyChanges(n int) []m.Change {
	changes := make([]m.Change, 0, n)
	for i := 0; i < n; i++ {
		c := m.Change{Line: i + 1, Name: fmt.Sprintf("MSG_%d", i), Original: fmt.Sprintf("Text number %d", i)}
		if i%2 == 1 {
			c.Skip = m.SkipUnchanged
		}

		changes = append(changes, c)
	}

	return changes
}

func TestScanModel_HandleScanMsgAndView(t *testing.T) {
	model := newScanModel()
	assert.Equal(t, "Scanning literals…\n", model.View())

	model = model.handleScanMsg(scanMsg{source: "bot.py", changes: manyChanges(30)})

	assert.True(t, model.rendered)
	assert.Equal(t, 30, model.total)
	assert.Equal(t, 15, model.translated)
	assert.Equal(t, 0, model.lastSelected)
	assert.Len(t, model.literals.Items(), 30)

	model.width = 100
	model.height = 30

	view := model.View()
	assert.Contains(t, view, "Glossa Literal Scan: bot.py")
	assert.Contains(t, view, "Literals:")

	table := model.renderTable()
	assert.Contains(t, table, "Line")
	assert.Contains(t, table, "Decision")

	assert.NotNil(t, model.Init())

	model.height = 0
	model.width = 20
	_ = model.renderTable()
}

func TestScanModel_UpdateBranches(t *testing.T) {
	model := newScanModel().handleScanMsg(scanMsg{source: "bot.py", changes: manyChanges(3)})

	next, cmd := model.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd)

	updated := next.(scanModel)
	assert.Equal(t, 1, updated.animOffset)

	next, _ = updated.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	updated = next.(scanModel)
	assert.Equal(t, 100, updated.width)
	assert.Equal(t, 40, updated.height)

	next, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	updated = next.(scanModel)
	assert.Equal(t, 1, updated.lastSelected)
	assert.Equal(t, 0, updated.animOffset, "selection change resets the scroll")

	_, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.NotNil(t, cmd)

	idle := newScanModel()
	_, cmd = idle.Update(tickMsg(time.Now()))
	assert.Nil(t, cmd, "no animation before the first scan arrives")

	next, _ = idle.Update(scanMsg{source: "x.py", changes: manyChanges(1)})
	assert.True(t, next.(scanModel).rendered)
}

func TestScanDelegate_Render(t *testing.T) {
	delegate := scanDelegate{}
	items := []list.Item{
		newLiteralItem(m.Change{Line: 7, Name: "HELP_TEXT", Original: "Use /start to begin"}),
		newLiteralItem(m.Change{Line: 9, Original: "x", Skip: m.SkipContent}),
	}
	lm := list.New(items, delegate, 60, 5)

	var buf bytes.Buffer
	delegate.Render(&buf, lm, 0, items[0])
	assert.Contains(t, buf.String(), "Use /start")
	assert.Contains(t, buf.String(), "translate")

	buf.Reset()
	delegate.Render(&buf, lm, 1, items[1])
	assert.Contains(t, buf.String(), "skip: content")

	buf.Reset()
	delegate.Render(&buf, lm, 0, struct{ list.Item }{})
	assert.Zero(t, buf.Len())

	assert.Equal(t, 1, delegate.Height())
	assert.Equal(t, 0, delegate.Spacing())
	assert.Nil(t, delegate.Update(nil, &lm))

	assert.True(t, strings.Contains(items[0].FilterValue(), "HELP_TEXT"))
}
