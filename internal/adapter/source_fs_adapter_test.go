package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/glossa/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "messages.py"), "A = 'a'\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.py"), "B = 'b'\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.py")} {
			assert.Falsef(t, containsPath(visited, forbidden), "Walk() unexpectedly visited %s when recursive is false", forbidden)
		}

		assert.True(t, containsPath(visited, filepath.Join(root, "messages.py")), "Walk() did not visit top-level file")
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.py")
		writeTestFile(t, child, "B = 'b'\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.True(t, containsPath(visited, child), "Walk() did not visit nested file when recursive")
	})
}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	bot := filepath.Join(root, "bot.py")
	prev := filepath.Join(root, "bot_OUT.py")
	notes := filepath.Join(root, "notes.txt")
	nested := filepath.Join(root, "pkg", "menu.py")

	writeTestFile(t, bot, "A = 'a'\n")
	writeTestFile(t, prev, "A = 'a'\n")
	writeTestFile(t, notes, "hello\n")
	mustMkdir(t, filepath.Dir(nested))
	writeTestFile(t, nested, "B = 'b'\n")

	t.Run("directory filters by extension and output suffix", func(t *testing.T) {
		got, err := adapter.Get([]m.Path{m.Path(root)}, ".py", "_OUT")
		require.NoError(t, err)

		assert.Equal(t, []m.Path{m.Path(bot)}, got)
	})

	t.Run("recursive pattern descends", func(t *testing.T) {
		got, err := adapter.Get([]m.Path{m.Path(root + "/...")}, ".py", "_OUT")
		require.NoError(t, err)

		assert.Equal(t, []m.Path{m.Path(bot), m.Path(nested)}, got)
	})

	t.Run("explicit files are kept regardless of extension", func(t *testing.T) {
		got, err := adapter.Get([]m.Path{m.Path(notes), m.Path(bot), m.Path(notes)}, ".py", "_OUT")
		require.NoError(t, err)

		assert.Equal(t, []m.Path{m.Path(notes), m.Path(bot)}, got)
	})

	t.Run("missing root is an error", func(t *testing.T) {
		_, err := adapter.Get([]m.Path{m.Path(filepath.Join(root, "missing.py"))}, ".py", "_OUT")

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("no roots", func(t *testing.T) {
		got, err := adapter.Get(nil, ".py", "_OUT")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestLocalSourceFSAdapter_ReadWriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "out", "messages_OUT.py")
	content := "ERROR_MSG = \"Ошибка\"\n"

	require.NoError(t, adapter.WriteFile(m.Path(path), []byte(content), 0o644))

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, content, string(got))

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestLocalSourceFSAdapter_ReadFileMissing(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	_, err := adapter.ReadFile(m.Path(filepath.Join(t.TempDir(), "nope.py")))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalSourceFSAdapter_OutputPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	tests := []struct {
		src    string
		suffix string
		want   string
	}{
		{src: "bot.py", suffix: "_OUT", want: "bot_OUT.py"},
		{src: "dir/messages.txt", suffix: "_ru", want: "dir/messages_ru.txt"},
		{src: "Makefile", suffix: "_OUT", want: "Makefile_OUT"},
		{src: "archive.tar.gz", suffix: "_OUT", want: "archive.tar_OUT.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, m.Path(tt.want), adapter.OutputPath(m.Path(tt.src), tt.suffix))
		})
	}
}

func TestLocalSourceFSAdapter_Fingerprint(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	a := adapter.Fingerprint([]byte("hello"))
	b := adapter.Fingerprint([]byte("hello"))
	c := adapter.Fingerprint([]byte("hello!"))

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestParseRootPath(t *testing.T) {
	tests := []struct {
		in        string
		path      string
		recursive bool
	}{
		{in: "./...", path: ".", recursive: true},
		{in: "src/...", path: "src", recursive: true},
		{in: "src", path: "src", recursive: false},
		{in: "...", path: "...", recursive: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			path, recursive := parseRootPath(tt.in)
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.recursive, recursive)
		})
	}
}

func TestNormalizeRootPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, recursive, err := normalizeRootPath("~/texts/...")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "texts"), got)
	assert.True(t, recursive)

	got, recursive, err = normalizeRootPath("/...")
	require.NoError(t, err)
	assert.Equal(t, ".", got)
	assert.True(t, recursive)
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(path, 0o750))
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
