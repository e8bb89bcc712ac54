package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/glossa/internal/model"
)

// maxContinuationLines bounds how far back a statement is followed across
// bracket or backslash continuations when looking for its assignment target.
const maxContinuationLines = 64

// continuationEnds are line endings that leave a statement open.
const continuationEnds = "([{,\\+"

var assignmentPattern = regexp.MustCompile(`(?s)^\s*([A-Za-z_][A-Za-z0-9_.]*)\s*=\s*.+$`)

// ParseDocument scans text once and returns the immutable document.
func ParseDocument(origin m.Path, text string) m.SourceDocument {
	return m.SourceDocument{
		Origin: origin,
		Text:   text,
		Spans:  ScanLiterals(text),
	}
}

// ScanLiterals enumerates quoted-string spans in source order. A quote
// character opens a literal that ends at the next identical delimiter,
// newlines included; triple quotes are preferred when they close. Escapes are
// not interpreted.
func ScanLiterals(text string) []m.LiteralSpan {
	var spans []m.LiteralSpan

	line := 1
	counted := 0

	for pos := 0; pos < len(text); {
		if text[pos] != '"' && text[pos] != '\'' {
			pos++
			continue
		}

		quote, end, ok := matchLiteral(text, pos)
		if !ok {
			pos++
			continue
		}

		line += strings.Count(text[counted:pos], "\n")
		counted = pos

		spans = append(spans, m.LiteralSpan{
			Quote: quote,
			Body:  text[pos+len(quote) : end-len(quote)],
			Start: pos,
			End:   end,
			Line:  line,
			Name:  assignmentName(text, pos, end),
		})

		pos = end
	}

	return spans
}

// matchLiteral tries a triple-quoted literal first and falls back to a
// single-character delimiter at the same position.
func matchLiteral(text string, pos int) (m.Quote, int, bool) {
	delim := text[pos : pos+1]
	triple := strings.Repeat(delim, 3)

	if strings.HasPrefix(text[pos:], triple) {
		if i := strings.Index(text[pos+3:], triple); i >= 0 {
			return m.Quote(triple), pos + 3 + i + 3, true
		}
	}

	if i := strings.IndexByte(text[pos+1:], text[pos]); i >= 0 {
		return m.Quote(delim), pos + 1 + i + 1, true
	}

	return "", 0, false
}

// assignmentName returns the `name =` target of the statement holding the
// literal. The literal's own line is tried first, then the statement start
// reached by walking back over continuation lines.
func assignmentName(text string, start, end int) string {
	lineStart := strings.LastIndexByte(text[:start], '\n') + 1

	if name := matchAssignment(text[lineStart:end]); name != "" {
		return name
	}

	stmtStart := statementStart(text, lineStart)
	if stmtStart == lineStart {
		return ""
	}

	return matchAssignment(text[stmtStart:end])
}

func matchAssignment(block string) string {
	match := assignmentPattern.FindStringSubmatch(block)
	if match == nil {
		return ""
	}

	return match[1]
}

func statementStart(text string, lineStart int) int {
	start := lineStart

	for i := 0; i < maxContinuationLines; i++ {
		if start == 0 {
			break
		}

		prevEnd := start - 1
		prevStart := strings.LastIndexByte(text[:prevEnd], '\n') + 1

		prev := strings.TrimRight(text[prevStart:prevEnd], " \t\r")
		if prev == "" || !strings.ContainsRune(continuationEnds, rune(prev[len(prev)-1])) {
			break
		}

		start = prevStart
	}

	return start
}
