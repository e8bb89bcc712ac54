package model

import "strings"

// Entry is one canonical English key and its target-language value.
type Entry struct {
	Key   string
	Value string
}

// Dictionary is an immutable, ordered translation table.
//
// Lookups try the key exactly as authored first and then fall back to a
// case-insensitive match. When several keys fold to the same lowercase form
// the one defined first wins, so results never depend on map iteration order.
type Dictionary struct {
	entries []Entry
	exact   map[string]int
	folded  map[string]int
}

// NewDictionary builds a dictionary from entries in order. A repeated key
// keeps its original position and takes the later value.
func NewDictionary(entries ...Entry) *Dictionary {
	d := &Dictionary{
		entries: make([]Entry, 0, len(entries)),
		exact:   make(map[string]int, len(entries)),
		folded:  make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		d.put(e)
	}

	return d
}

func (d *Dictionary) put(e Entry) {
	if i, ok := d.exact[e.Key]; ok {
		d.entries[i].Value = e.Value
		return
	}

	d.entries = append(d.entries, e)
	i := len(d.entries) - 1
	d.exact[e.Key] = i

	lower := strings.ToLower(e.Key)
	if _, ok := d.folded[lower]; !ok {
		d.folded[lower] = i
	}
}

// Merge returns a new dictionary with overrides applied on top of d.
// The receiver is left untouched.
func (d *Dictionary) Merge(overrides ...Entry) *Dictionary {
	merged := NewDictionary(d.Entries()...)
	for _, e := range overrides {
		merged.put(e)
	}

	return merged
}

// Lookup returns the value for word, trying an exact match before a case-insensitive one.
func (d *Dictionary) Lookup(word string) (string, bool) {
	if d == nil {
		return "", false
	}

	if i, ok := d.exact[word]; ok {
		return d.entries[i].Value, true
	}

	if i, ok := d.folded[strings.ToLower(word)]; ok {
		return d.entries[i].Value, true
	}

	return "", false
}

// Len returns the number of distinct keys.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}

	return len(d.entries)
}

// Entries returns a copy of the entries in definition order.
func (d *Dictionary) Entries() []Entry {
	if d == nil {
		return nil
	}

	out := make([]Entry, len(d.entries))
	copy(out, d.entries)

	return out
}

// Language describes one built-in vocabulary table.
type Language struct {
	Code    string
	Name    string
	Entries int
}
