// Package model defines the data structures shared by the literal rewriting pipeline.
package model

import "strings"

// Path represents a file system path.
type Path string

// Quote is the delimiter used by a string literal.
type Quote string

const (
	// QuoteSingle is a literal delimited by '.
	QuoteSingle Quote = "'"
	// QuoteDouble is a literal delimited by ".
	QuoteDouble Quote = `"`
	// QuoteTripleSingle is a literal delimited by '''.
	QuoteTripleSingle Quote = "'''"
	// QuoteTripleDouble is a literal delimited by """.
	QuoteTripleDouble Quote = `"""`
)

// IsTriple reports whether the quote is a three character delimiter.
func (q Quote) IsTriple() bool {
	return len(q) == 3
}

// LiteralSpan is one quoted-string occurrence in a source document.
// Start and End are byte offsets of the whole literal, delimiters included.
type LiteralSpan struct {
	Quote Quote
	Body  string
	Start int
	End   int
	Line  int
	// Name is the assignment target the literal belongs to, empty when none was found.
	Name string
	// Ignored is set when a glossa:ignore directive covers the literal.
	Ignored bool
}

// BodyStart returns the byte offset of the first body byte.
func (s LiteralSpan) BodyStart() int {
	return s.Start + len(s.Quote)
}

// BodyEnd returns the byte offset just past the last body byte.
func (s LiteralSpan) BodyEnd() int {
	return s.End - len(s.Quote)
}

// Render returns the literal with the given body wrapped in the span's own quotes.
func (s LiteralSpan) Render(body string) string {
	var b strings.Builder

	b.Grow(len(body) + 2*len(s.Quote))
	b.WriteString(string(s.Quote))
	b.WriteString(body)
	b.WriteString(string(s.Quote))

	return b.String()
}

// SourceDocument is the immutable input text together with the literal spans found in it.
type SourceDocument struct {
	Origin Path
	Text   string
	Spans  []LiteralSpan
}
