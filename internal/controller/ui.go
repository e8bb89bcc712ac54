// Package controller provides output adapters for displaying translation results.
package controller

import (
	"strings"

	m "github.com/mouse-blink/glossa/internal/model"
)

const (
	previewLimit    = 120
	previewEllipsis = "..."
)

// UI defines how workflow results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayChange reports one rewritten literal.
	DisplayChange(source m.Path, change m.Change)
	// DisplaySummary reports the counters and output path of one document.
	DisplaySummary(report m.Report) error
	// DisplayScan lists the decision for every literal of a document.
	DisplayScan(source m.Path, changes []m.Change) error
	// DisplayLanguages lists the built-in tables.
	DisplayLanguages(langs []m.Language) error
	// DisplayReports lists stored run reports.
	DisplayReports(reports []m.Report) error
}

// Preview renders a literal body on one line, truncated to 120 characters.
func Preview(text string) string {
	text = strings.ReplaceAll(text, "\n", `\n`)

	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}

	return string(runes[:previewLimit-len(previewEllipsis)]) + previewEllipsis
}

// Decision is the human label for a change.
func Decision(change m.Change) string {
	switch change.Skip {
	case m.SkipNone:
		return "translate"
	case m.SkipName:
		return "skip: name"
	case m.SkipContent:
		return "skip: content"
	case m.SkipUnchanged:
		return "skip: no match"
	case m.SkipIgnored:
		return "skip: ignored"
	default:
		return "skip: " + string(change.Skip)
	}
}

// countChanges returns translated and skipped totals.
func countChanges(changes []m.Change) (int, int) {
	translated := 0

	for _, c := range changes {
		if c.Translated() {
			translated++
		}
	}

	return translated, len(changes) - translated
}
