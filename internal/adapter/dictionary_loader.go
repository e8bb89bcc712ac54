package adapter

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/leonelquinteros/gotext"
	"github.com/tidwall/gjson"

	m "github.com/mouse-blink/glossa/internal/model"
)

// Override file formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatPO   = "po"
)

// ErrNotObject is returned when an override file's root is not a string mapping.
var ErrNotObject = errors.New("dictionary root must be a mapping")

// DictionaryFile is a parsed override file.
type DictionaryFile struct {
	Path   m.Path
	Format string
	// Entries keeps only string keys with string values, in file order.
	Entries []m.Entry
	// Declared counts every top-level entry before non-string values were dropped.
	Declared int
}

// Dropped reports how many declared entries were discarded.
func (f DictionaryFile) Dropped() int {
	return f.Declared - len(f.Entries)
}

// DictionaryLoader reads user-supplied dictionary overrides.
type DictionaryLoader interface {
	Load(path m.Path) (DictionaryFile, error)
}

type dictionaryLoader struct {
	fs SourceFSAdapter
}

// NewDictionaryLoader constructs a DictionaryLoader reading through fs.
func NewDictionaryLoader(fs SourceFSAdapter) DictionaryLoader {
	return &dictionaryLoader{fs: fs}
}

func (l *dictionaryLoader) Load(path m.Path) (DictionaryFile, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return DictionaryFile{}, fmt.Errorf("read dictionary %s: %w", path, err)
	}

	format := DetectFormat(path)
	file := DictionaryFile{Path: path, Format: format}

	switch format {
	case FormatYAML:
		file.Entries, file.Declared, err = parseYAMLDictionary(data)
	case FormatPO:
		file.Entries, file.Declared, err = parsePODictionary(data)
	default:
		file.Entries, file.Declared, err = parseJSONDictionary(data)
	}

	if err != nil {
		return DictionaryFile{}, fmt.Errorf("parse %s dictionary %s: %w", format, path, err)
	}

	return file, nil
}

// DetectFormat picks the override format from the file extension; JSON is the default.
func DetectFormat(path m.Path) string {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".po":
		return FormatPO
	default:
		return FormatJSON
	}
}

func parseJSONDictionary(data []byte) ([]m.Entry, int, error) {
	if !gjson.ValidBytes(data) {
		return nil, 0, errors.New("invalid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, 0, ErrNotObject
	}

	var (
		entries  []m.Entry
		declared int
	)

	root.ForEach(func(key, value gjson.Result) bool {
		declared++

		if value.Type == gjson.String {
			entries = append(entries, m.Entry{Key: key.String(), Value: value.String()})
		}

		return true
	})

	return entries, declared, nil
}

func parseYAMLDictionary(data []byte) ([]m.Entry, int, error) {
	var probe any
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, 0, err
	}

	switch probe.(type) {
	case nil:
		return []m.Entry{}, 0, nil
	case map[string]any, map[any]any:
	default:
		return nil, 0, ErrNotObject
	}

	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, 0, err
	}

	entries := make([]m.Entry, 0, len(doc))

	for _, item := range doc {
		key, keyOK := item.Key.(string)
		value, valueOK := item.Value.(string)

		if keyOK && valueOK {
			entries = append(entries, m.Entry{Key: key, Value: value})
		}
	}

	return entries, len(doc), nil
}

func parsePODictionary(data []byte) ([]m.Entry, int, error) {
	po := gotext.NewPo()
	po.Parse(data)

	translations := po.GetDomain().GetTranslations()

	ids := make([]string, 0, len(translations))
	for id := range translations {
		if id == "" {
			continue
		}

		ids = append(ids, id)
	}

	sort.Strings(ids)

	entries := make([]m.Entry, 0, len(ids))

	for _, id := range ids {
		value := translations[id].Get()
		if value == "" || value == id {
			continue
		}

		entries = append(entries, m.Entry{Key: id, Value: value})
	}

	return entries, len(ids), nil
}
