package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/glossa/internal/model"
)

func TestScanLiterals_QuoteStyles(t *testing.T) {
	text := `A = "double"
B = 'single'
C = """triple
line"""
D = '''also'''
`

	spans := ScanLiterals(text)
	require.Len(t, spans, 4)

	assert.Equal(t, m.QuoteDouble, spans[0].Quote)
	assert.Equal(t, "double", spans[0].Body)
	assert.Equal(t, "A", spans[0].Name)
	assert.Equal(t, 1, spans[0].Line)

	assert.Equal(t, m.QuoteSingle, spans[1].Quote)
	assert.Equal(t, "single", spans[1].Body)
	assert.Equal(t, 2, spans[1].Line)

	assert.Equal(t, m.QuoteTripleDouble, spans[2].Quote)
	assert.Equal(t, "triple\nline", spans[2].Body)
	assert.Equal(t, "C", spans[2].Name)
	assert.Equal(t, 3, spans[2].Line)

	assert.Equal(t, m.QuoteTripleSingle, spans[3].Quote)
	assert.Equal(t, "also", spans[3].Body)
	assert.Equal(t, 5, spans[3].Line)

	for _, sp := range spans {
		assert.Equal(t, sp.Render(sp.Body), text[sp.Start:sp.End])
		assert.Equal(t, sp.Body, text[sp.BodyStart():sp.BodyEnd()])
	}
}

func TestScanLiterals_EmptyAndUnterminated(t *testing.T) {
	spans := ScanLiterals(`X = "" + "ok" + 'open`)

	require.Len(t, spans, 2)
	assert.Equal(t, "", spans[0].Body)
	assert.Equal(t, "ok", spans[1].Body)
}

func TestScanLiterals_UnclosedTripleFallsBackToSingle(t *testing.T) {
	spans := ScanLiterals(`"""abc"`)

	require.Len(t, spans, 2)
	assert.Equal(t, m.QuoteDouble, spans[0].Quote)
	assert.Equal(t, "", spans[0].Body)
	assert.Equal(t, "abc", spans[1].Body)
}

func TestScanLiterals_AssignmentNames(t *testing.T) {
	text := `ERROR_MSG = "Error: Please wait"
print("no assignment")
Config.TOKEN = "abc"
HELP_TEXT = (
    "Use this,",
    "and that"
)
    indented_name = 'x'
x == "compare"
`

	spans := ScanLiterals(text)
	require.Len(t, spans, 7)

	assert.Equal(t, "ERROR_MSG", spans[0].Name)
	assert.Equal(t, "", spans[1].Name)
	assert.Equal(t, "Config.TOKEN", spans[2].Name)
	assert.Equal(t, "HELP_TEXT", spans[3].Name)
	assert.Equal(t, "HELP_TEXT", spans[4].Name)
	assert.Equal(t, "indented_name", spans[5].Name)
	assert.Equal(t, "x", spans[6].Name)
}

func TestParseDocument(t *testing.T) {
	doc := ParseDocument("messages.py", `A = "a"`)

	assert.Equal(t, m.Path("messages.py"), doc.Origin)
	assert.Equal(t, `A = "a"`, doc.Text)
	assert.Len(t, doc.Spans, 1)
}
