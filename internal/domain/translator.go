package domain

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	m "github.com/mouse-blink/glossa/internal/model"
)

var wordPattern = regexp.MustCompile(`[A-Za-z][A-Za-z'\-]+`)

// toggleWords are uppercase tokens that are still prose, not constants.
var toggleWords = map[string]struct{}{
	"ON":  {},
	"OFF": {},
}

// Translator rewrites dictionary words inside already masked text.
type Translator struct {
	dict *m.Dictionary
}

// NewTranslator creates a Translator over a read-only dictionary.
func NewTranslator(dict *m.Dictionary) *Translator {
	return &Translator{dict: dict}
}

// TranslateWords replaces every dictionary word in text. Characters between
// words are copied unchanged.
func (tr *Translator) TranslateWords(text string) string {
	return wordPattern.ReplaceAllStringFunc(text, tr.Word)
}

// Word translates a single token, or returns it unchanged on a miss.
func (tr *Translator) Word(word string) string {
	if isUpper(word) {
		if _, ok := toggleWords[word]; !ok {
			return word
		}
	}

	value, ok := tr.dict.Lookup(word)
	if !ok {
		return word
	}

	return PreserveCasing(word, value)
}

// PreserveCasing maps the capitalization style of src onto dst.
func PreserveCasing(src, dst string) string {
	switch {
	case isUpper(src):
		return strings.ToUpper(dst)
	case isTitle(src):
		first, rest, found := strings.Cut(dst, " ")
		if !found {
			return capitalize(dst)
		}

		return capitalize(first) + " " + rest
	case isLower(src):
		return strings.ToLower(dst)
	default:
		return dst
	}
}

// isUpper reports whether s has cased letters and none of them is lowercase.
func isUpper(s string) bool {
	cased := false

	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}

		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}

	return cased
}

// isLower reports whether s has cased letters and none of them is uppercase.
func isLower(s string) bool {
	cased := false

	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}

		if unicode.IsLower(r) {
			cased = true
		}
	}

	return cased
}

// isTitle reports whether every run of cased letters starts with an
// uppercase letter followed only by lowercase ones ("Hello", "Well-Known").
func isTitle(s string) bool {
	cased := false
	prevCased := false

	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}

			prevCased = true
			cased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}

			prevCased = true
			cased = true
		default:
			prevCased = false
		}
	}

	return cased
}

// capitalize title-cases the first rune and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}
