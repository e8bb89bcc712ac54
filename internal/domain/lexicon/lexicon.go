// Package lexicon holds the built-in vocabulary tables, keyed by language code.
package lexicon

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	m "github.com/mouse-blink/glossa/internal/model"
)

var tables = map[string][][2]string{
	"ru": russian,
	"ar": arabic,
	"hi": hindi,
}

// Normalize reduces a user supplied selector such as "RU" or "ru-RU" to the
// base language code used as a table key. Selectors that are not valid
// BCP 47 tags are only lowercased.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}

	tag, err := language.Parse(code)
	if err != nil {
		return code
	}

	base, _ := tag.Base()

	return base.String()
}

// Lookup returns a fresh dictionary for the language code. The second result
// is false when there is no built-in table, in which case the dictionary is empty.
func Lookup(code string) (*m.Dictionary, bool) {
	table, ok := tables[Normalize(code)]
	if !ok {
		return m.NewDictionary(), false
	}

	entries := make([]m.Entry, len(table))
	for i, pair := range table {
		entries[i] = m.Entry{Key: pair[0], Value: pair[1]}
	}

	return m.NewDictionary(entries...), true
}

// Languages lists the built-in tables sorted by code.
func Languages() []m.Language {
	codes := make([]string, 0, len(tables))
	for code := range tables {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	namer := display.English.Languages()
	out := make([]m.Language, 0, len(codes))

	for _, code := range codes {
		dict, _ := Lookup(code)
		out = append(out, m.Language{
			Code:    code,
			Name:    namer.Name(language.Make(code)),
			Entries: dict.Len(),
		})
	}

	return out
}
