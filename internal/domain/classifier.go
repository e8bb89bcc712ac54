package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mouse-blink/glossa/internal/domain/protect"
	m "github.com/mouse-blink/glossa/internal/model"
)

// noiseWeight scales the protection hit count against the body length.
// A body with more weighted hits than characters is mostly technical noise.
const noiseWeight = 6

// skipEntireLiteral rejects bodies that are never user-facing prose.
var skipEntireLiteral = []*regexp.Regexp{
	regexp.MustCompile(`^\s*$`),
	regexp.MustCompile(`^(?:\\[nrt\\]|[\n\r\t\\])+$`),
	regexp.MustCompile(`(?i)^\s*(?:https?://|www\.)`),
	regexp.MustCompile(`^[A-Za-z0-9_/.\-]+$`),
}

var (
	asciiLetter = regexp.MustCompile(`[A-Za-z]`)
	upperSnake  = regexp.MustCompile(`^[A-Z0-9_]+$`)
)

// messageSuffixes mark variables that hold user-facing text.
var messageSuffixes = []string{"_MSG", "_TITLE", "_TEXT", "_HINT"}

// Classifier decides whether a literal is eligible for translation.
type Classifier struct {
	rules protect.RuleSet
}

// NewClassifier creates a Classifier that measures technical noise with rules.
func NewClassifier(rules protect.RuleSet) *Classifier {
	return &Classifier{rules: rules}
}

// ShouldTranslate applies the content heuristic to a literal body.
func (c *Classifier) ShouldTranslate(body string) bool {
	for _, rx := range skipEntireLiteral {
		if rx.MatchString(body) {
			return false
		}
	}

	if !asciiLetter.MatchString(body) {
		return false
	}

	hits := c.rules.CountMatches(body)
	if hits > 0 && hits*noiseWeight > utf8.RuneCountInString(body) {
		return false
	}

	return true
}

// IsProbablyMessageVar applies the naming heuristic to an assignment target.
func (c *Classifier) IsProbablyMessageVar(name string) bool {
	for _, prefix := range protect.TechnicalPrefixes {
		if strings.HasPrefix(name, prefix) {
			return false
		}
	}

	for _, suffix := range messageSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	return upperSnake.MatchString(name)
}

// Classify returns SkipNone when the span may be translated, otherwise the reason it may not.
// Spans without an assignment name are judged on content alone.
func (c *Classifier) Classify(span m.LiteralSpan) m.SkipReason {
	if span.Ignored {
		return m.SkipIgnored
	}

	if span.Name != "" && !c.IsProbablyMessageVar(span.Name) {
		return m.SkipName
	}

	if !c.ShouldTranslate(span.Body) {
		return m.SkipContent
	}

	return m.SkipNone
}
