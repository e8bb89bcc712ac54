package controller

import (
	"fmt"

	m "github.com/mouse-blink/glossa/internal/model"
)

// Message types.
type scanMsg struct {
	source  string
	changes []m.Change
}

// List item types.
type literalItem struct {
	line     int
	name     string
	decision string
	text     string
	eligible bool
}

func newLiteralItem(change m.Change) literalItem {
	return literalItem{
		line:     change.Line,
		name:     change.Name,
		decision: Decision(change),
		text:     Preview(change.Original),
		eligible: change.Translated(),
	}
}

func (l literalItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", l.name, l.decision, l.text)
}
