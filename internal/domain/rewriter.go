package domain

import (
	"strings"

	"github.com/mouse-blink/glossa/internal/domain/protect"
	m "github.com/mouse-blink/glossa/internal/model"
)

// Rewriter translates the eligible literals of a document.
type Rewriter interface {
	// Decide classifies and, when eligible, translates a single span.
	Decide(span m.LiteralSpan) m.Change
	// TranslateBody runs mask, word translation and unmask on a literal body.
	TranslateBody(body string) string
	// Rewrite folds over the document spans and returns the new text and counters.
	Rewrite(doc m.SourceDocument) m.Result
}

type rewriter struct {
	masker     *protect.Masker
	classifier *Classifier
	translator *Translator
}

// NewRewriter creates a Rewriter using the default protection rules.
func NewRewriter(dict *m.Dictionary) Rewriter {
	return NewRewriterWithRules(dict, protect.Default())
}

// NewRewriterWithRules creates a Rewriter using a custom rule order.
func NewRewriterWithRules(dict *m.Dictionary, rules protect.RuleSet) Rewriter {
	return &rewriter{
		masker:     protect.NewMasker(rules),
		classifier: NewClassifier(rules),
		translator: NewTranslator(dict),
	}
}

func (rw *rewriter) TranslateBody(body string) string {
	masked, tokens := rw.masker.Mask(body)
	translated := rw.translator.TranslateWords(masked)

	return rw.masker.Unmask(translated, tokens)
}

func (rw *rewriter) Decide(span m.LiteralSpan) m.Change {
	change := m.Change{
		Line:     span.Line,
		Name:     span.Name,
		Original: span.Body,
	}

	if reason := rw.classifier.Classify(span); reason != m.SkipNone {
		change.Skip = reason
		return change
	}

	result := rw.TranslateBody(span.Body)
	if result == span.Body {
		change.Skip = m.SkipUnchanged
		return change
	}

	change.Result = result

	return change
}

// rewriteState is the accumulator of the fold over literal spans.
type rewriteState struct {
	out    strings.Builder
	cursor int
	result m.Result
}

func (rw *rewriter) Rewrite(doc m.SourceDocument) m.Result {
	var st rewriteState

	st.out.Grow(len(doc.Text))
	st.result.Changes = make([]m.Change, 0, len(doc.Spans))

	for _, span := range doc.Spans {
		rw.step(&st, doc.Text, span)
	}

	st.out.WriteString(doc.Text[st.cursor:])
	st.result.Text = st.out.String()

	return st.result
}

// step appends the verbatim gap before span followed by either the
// rewritten literal or the original one.
func (rw *rewriter) step(st *rewriteState, text string, span m.LiteralSpan) {
	change := rw.Decide(span)

	st.out.WriteString(text[st.cursor:span.Start])

	if change.Translated() {
		st.out.WriteString(span.Render(change.Result))
		st.result.Translated++
	} else {
		st.out.WriteString(text[span.Start:span.End])
		st.result.Skipped++
	}

	st.cursor = span.End
	st.result.Changes = append(st.result.Changes, change)
}
