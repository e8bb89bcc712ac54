package protect

import (
	"strconv"
	"strings"

	m "github.com/mouse-blink/glossa/internal/model"
)

// Mask tokens are built from Unicode private-use code points: they never
// appear in ordinary prose and no rule can start or end inside one.
const (
	tokenOpen  = '\uE000'
	tokenClose = '\uE001'
	digitBase  = '\uE010'
)

// Token renders the placeholder for the fragment with the given index.
func Token(index int) string {
	digits := strconv.Itoa(index)

	var b strings.Builder

	b.Grow((len(digits) + 2) * 3)
	b.WriteRune(tokenOpen)

	for _, d := range digits {
		b.WriteRune(digitBase + (d - '0'))
	}

	b.WriteRune(tokenClose)

	return b.String()
}

// ContainsToken reports whether text already holds token-shaped runes, in
// which case a mask/unmask round trip is not guaranteed.
func ContainsToken(text string) bool {
	return strings.ContainsRune(text, tokenOpen) || strings.ContainsRune(text, tokenClose)
}

// Masker replaces protected fragments with indexed tokens and restores them.
type Masker struct {
	rules RuleSet
}

// NewMasker creates a Masker applying rules in their set order.
func NewMasker(rules RuleSet) *Masker {
	return &Masker{rules: rules}
}

// Rules returns the rule set used by the masker.
func (mk *Masker) Rules() RuleSet {
	return mk.rules
}

// Mask applies every rule in order, one category at a time. Text already
// replaced by an earlier category is a token and is not matched again.
func (mk *Masker) Mask(text string) (string, []m.MaskToken) {
	var tokens []m.MaskToken

	for _, rule := range mk.rules.rules {
		text = maskRule(rule, text, &tokens)
	}

	return text, tokens
}

func maskRule(rule Rule, text string, tokens *[]m.MaskToken) string {
	spans := rule.spans(text)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder

	b.Grow(len(text))

	last := 0

	for _, sp := range spans {
		idx := len(*tokens)
		*tokens = append(*tokens, m.MaskToken{Index: idx, Fragment: text[sp[0]:sp[1]], Rule: rule.Name})

		b.WriteString(text[last:sp[0]])
		b.WriteString(Token(idx))

		last = sp[1]
	}

	b.WriteString(text[last:])

	return b.String()
}

// Unmask restores tokens produced by Mask. Tokens are restored from the
// highest index down so that a broad later fragment which swallowed an
// earlier token gives that token back before it is itself restored.
func (mk *Masker) Unmask(text string, tokens []m.MaskToken) string {
	for i := len(tokens) - 1; i >= 0; i-- {
		text = strings.ReplaceAll(text, Token(tokens[i].Index), tokens[i].Fragment)
	}

	return text
}
