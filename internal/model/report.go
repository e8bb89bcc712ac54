package model

import "time"

// SkipReason explains why a literal was copied through unchanged.
type SkipReason string

const (
	// SkipNone marks a literal that was rewritten.
	SkipNone SkipReason = ""
	// SkipContent marks a body rejected by the content heuristic.
	SkipContent SkipReason = "content"
	// SkipName marks a literal assigned to a name that does not look like a message.
	SkipName SkipReason = "name"
	// SkipUnchanged marks an eligible literal whose words all missed the dictionary.
	SkipUnchanged SkipReason = "unchanged"
	// SkipIgnored marks a literal silenced by a glossa:ignore directive.
	SkipIgnored SkipReason = "ignored"
)

// Change is the outcome for one literal span.
type Change struct {
	Line     int        `yaml:"line"`
	Name     string     `yaml:"name,omitempty"`
	Original string     `yaml:"original"`
	Result   string     `yaml:"result,omitempty"`
	Skip     SkipReason `yaml:"skip,omitempty"`
}

// Translated reports whether the literal was rewritten.
func (c Change) Translated() bool {
	return c.Skip == SkipNone
}

// Report represents the result of rewriting a single document.
type Report struct {
	RunID      string    `yaml:"run_id"`
	Source     Path      `yaml:"source"`
	Output     Path      `yaml:"output"`
	Lang       string    `yaml:"lang"`
	SourceHash string    `yaml:"source_hash"`
	OutputHash string    `yaml:"output_hash"`
	Translated int       `yaml:"translated"`
	Skipped    int       `yaml:"skipped"`
	Changes    []Change  `yaml:"changes,omitempty"`
	CreatedAt  time.Time `yaml:"created_at"`
}

// Result holds the rewritten text and per-literal outcomes for one document.
type Result struct {
	Text       string
	Translated int
	Skipped    int
	Changes    []Change
}
