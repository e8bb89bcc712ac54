package domain

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/mouse-blink/glossa/internal/domain/lexicon"
	m "github.com/mouse-blink/glossa/internal/model"
)

// directivePattern matches "# glossa:ignore [langs]" and "// glossa:ignore-file [langs]".
var directivePattern = regexp.MustCompile(`(?:#|//)[ \t]*glossa:(ignore-file|ignore)\b([^\n]*)`)

const fileScope = "ignore-file"

type ignoreRule struct {
	all   bool
	langs map[string]struct{}
}

func (r ignoreRule) ignores(lang string) bool {
	if r.all {
		return true
	}

	if len(r.langs) == 0 || lang == "" {
		return false
	}

	_, ok := r.langs[lexicon.Normalize(lang)]

	return ok
}

func (r ignoreRule) empty() bool {
	return !r.all && len(r.langs) == 0
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.langs = nil

		return
	}

	if dst.all || len(src.langs) == 0 {
		return
	}

	if dst.langs == nil {
		dst.langs = make(map[string]struct{}, len(src.langs))
	}

	for code := range src.langs {
		dst.langs[code] = struct{}{}
	}
}

// parseIgnoreArgs reads the optional language list after a directive.
// An empty list ignores the literal for every language.
func parseIgnoreArgs(rest string) ignoreRule {
	parts := strings.FieldsFunc(rest, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	rule := ignoreRule{langs: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		code := lexicon.Normalize(part)
		if code == "" {
			continue
		}

		rule.langs[code] = struct{}{}
	}

	if len(rule.langs) == 0 {
		return ignoreRule{all: true}
	}

	return rule
}

type ignoreIndex struct {
	file ignoreRule
	line map[int]ignoreRule
}

func (idx ignoreIndex) empty() bool {
	return idx.file.empty() && len(idx.line) == 0
}

// ignores reports whether any line in [first, last] is silenced for lang.
func (idx ignoreIndex) ignores(first, last int, lang string) bool {
	if idx.file.ignores(lang) {
		return true
	}

	for line := first; line <= last; line++ {
		if rule, ok := idx.line[line]; ok && rule.ignores(lang) {
			return true
		}
	}

	return false
}

// buildIgnoreIndex collects directives from comments. A trailing directive
// covers its own line; one on a line of its own covers the next line.
// Directive text inside a string literal is not a directive.
func buildIgnoreIndex(text string, spans []m.LiteralSpan) ignoreIndex {
	idx := ignoreIndex{line: make(map[int]ignoreRule)}
	lineStarts := computeLineStarts(text)

	for _, loc := range directivePattern.FindAllStringSubmatchIndex(text, -1) {
		offset := loc[0]
		if insideLiteral(offset, spans) {
			continue
		}

		rule := parseIgnoreArgs(text[loc[4]:loc[5]])

		if text[loc[2]:loc[3]] == fileScope {
			mergeIgnoreRule(&idx.file, rule)
			continue
		}

		line := lineAt(offset, lineStarts)

		target := line
		if isLeadingComment(line, offset, lineStarts, text) {
			target = line + 1
		}

		current := idx.line[target]
		mergeIgnoreRule(&current, rule)
		idx.line[target] = current
	}

	return idx
}

// MarkIgnored returns doc with every span covered by a glossa:ignore
// directive for lang flagged as ignored. doc itself is not modified.
func MarkIgnored(doc m.SourceDocument, lang string) m.SourceDocument {
	idx := buildIgnoreIndex(doc.Text, doc.Spans)
	if idx.empty() {
		return doc
	}

	spans := make([]m.LiteralSpan, len(doc.Spans))
	copy(spans, doc.Spans)

	for i, span := range spans {
		last := span.Line + strings.Count(doc.Text[span.Start:span.End], "\n")
		if idx.ignores(span.Line, last, lang) {
			spans[i].Ignored = true
		}
	}

	doc.Spans = spans

	return doc
}

func computeLineStarts(text string) []int {
	starts := []int{0}

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return starts
}

// lineAt returns the 1-based line containing offset.
func lineAt(offset int, lineStarts []int) int {
	return sort.Search(len(lineStarts), func(i int) bool {
		return lineStarts[i] > offset
	})
}

func isLeadingComment(line int, markerOffset int, lineStarts []int, text string) bool {
	if line <= 0 || line > len(lineStarts) {
		return false
	}

	start := lineStarts[line-1]
	if markerOffset < start || markerOffset > len(text) {
		return false
	}

	return strings.TrimSpace(text[start:markerOffset]) == ""
}

func insideLiteral(offset int, spans []m.LiteralSpan) bool {
	i := sort.Search(len(spans), func(i int) bool {
		return spans[i].End > offset
	})

	return i < len(spans) && spans[i].Start <= offset
}
