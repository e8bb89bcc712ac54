package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/glossa/internal/model"
)

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat("custom.json"))
	assert.Equal(t, FormatJSON, DetectFormat("custom"))
	assert.Equal(t, FormatYAML, DetectFormat("custom.yaml"))
	assert.Equal(t, FormatYAML, DetectFormat("custom.YML"))
	assert.Equal(t, FormatPO, DetectFormat("ru.po"))
}

func TestDictionaryLoader_JSON(t *testing.T) {
	loader := NewDictionaryLoader(NewLocalSourceFSAdapter())

	t.Run("keeps string values in document order", func(t *testing.T) {
		path := writeDictionary(t, "custom.json", `{
  "Wait": "Wayt",
  "count": 3,
  "Error": "Zed",
  "nested": {"a": "b"},
  "flag": true,
  "Wait": "Later"
}`)

		file, err := loader.Load(path)
		require.NoError(t, err)

		assert.Equal(t, FormatJSON, file.Format)
		assert.Equal(t, []m.Entry{
			{Key: "Wait", Value: "Wayt"},
			{Key: "Error", Value: "Zed"},
			{Key: "Wait", Value: "Later"},
		}, file.Entries)
		assert.Equal(t, 6, file.Declared)
		assert.Equal(t, 3, file.Dropped())

		got, _ := m.NewDictionary(file.Entries...).Lookup("Wait")
		assert.Equal(t, "Later", got, "later entries override earlier ones")
	})

	t.Run("array root is rejected", func(t *testing.T) {
		path := writeDictionary(t, "list.json", `["Error", "Zed"]`)

		_, err := loader.Load(path)
		assert.ErrorIs(t, err, ErrNotObject)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := writeDictionary(t, "broken.json", `{"Error": `)

		_, err := loader.Load(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load(m.Path(filepath.Join(t.TempDir(), "absent.json")))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDictionaryLoader_YAML(t *testing.T) {
	loader := NewDictionaryLoader(NewLocalSourceFSAdapter())

	t.Run("mapping", func(t *testing.T) {
		path := writeDictionary(t, "custom.yaml", `Error: Zed
Please: "Plz"
limit: 10
enabled: true
Wait: Wayt
`)

		file, err := loader.Load(path)
		require.NoError(t, err)

		assert.Equal(t, FormatYAML, file.Format)
		assert.Equal(t, []m.Entry{
			{Key: "Error", Value: "Zed"},
			{Key: "Please", Value: "Plz"},
			{Key: "Wait", Value: "Wayt"},
		}, file.Entries)
		assert.Equal(t, 5, file.Declared)
	})

	t.Run("sequence root is rejected", func(t *testing.T) {
		path := writeDictionary(t, "list.yml", "- Error\n- Zed\n")

		_, err := loader.Load(path)
		assert.ErrorIs(t, err, ErrNotObject)
	})

	t.Run("empty document", func(t *testing.T) {
		path := writeDictionary(t, "empty.yaml", "")

		file, err := loader.Load(path)
		require.NoError(t, err)
		assert.Empty(t, file.Entries)
	})
}

func TestDictionaryLoader_PO(t *testing.T) {
	loader := NewDictionaryLoader(NewLocalSourceFSAdapter())

	path := writeDictionary(t, "ru.po", `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"
"Language: ru\n"

msgid "Wait"
msgstr "Подождите"

msgid "Error"
msgstr "Ошибка"

msgid "Untranslated"
msgstr ""
`)

	file, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, FormatPO, file.Format)
	assert.Equal(t, []m.Entry{
		{Key: "Error", Value: "Ошибка"},
		{Key: "Wait", Value: "Подождите"},
	}, file.Entries)
	assert.GreaterOrEqual(t, file.Declared, len(file.Entries))
}

func writeDictionary(t *testing.T, name, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	writeTestFile(t, path, content)

	return m.Path(path)
}
