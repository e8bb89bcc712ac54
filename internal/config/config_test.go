package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "_OUT", cfg.OutSuffix)
	assert.Equal(t, 1, cfg.Parallel)
	assert.False(t, cfg.SaveReports)
}

func TestLoad_PrecedenceFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".glossa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`lang: ar
dict: custom.json
parallel: 4
save_reports: true
log:
  level: debug
  format: json
`), 0o600))

	t.Setenv("GLOSSA_LANG", "hi")
	t.Setenv("GLOSSA_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hi", cfg.Lang, "environment overrides the file")
	assert.Equal(t, "custom.json", cfg.Dict)
	assert.Equal(t, 4, cfg.Parallel)
	assert.True(t, cfg.SaveReports)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "_OUT", cfg.OutSuffix, "unset keys keep their default")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "malformed yaml", content: "lang: [ru"},
		{name: "zero parallel", content: "parallel: 0"},
		{name: "bad level", content: "log:\n  level: loud\n"},
		{name: "bad format", content: "log:\n  format: xml\n"},
		{name: "bad env int", content: "", env: map[string]string{"GLOSSA_PARALLEL": "many"}},
		{name: "bad env bool", content: "", env: map[string]string{"GLOSSA_SAVE_REPORTS": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "cfg.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestReadEnv(t *testing.T) {
	env := map[string]string{
		"GLOSSA_DICT":         "over.yaml",
		"GLOSSA_PARALLEL":     "3",
		"GLOSSA_LOG_FORMAT":   "json",
		"GLOSSA_SAVE_REPORTS": "1",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, readEnv(&cfg, lookup))

	assert.Equal(t, "over.yaml", cfg.Dict)
	assert.Equal(t, 3, cfg.Parallel)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.SaveReports)

	assert.Error(t, readEnv(cfg, lookup))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "", want: zerolog.InfoLevel},
		{in: "DEBUG", want: zerolog.DebugLevel},
		{in: "warning", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	SetupLogging(LogConfig{Level: "error", Format: "json"}, f)
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())

	SetupLogging(LogConfig{Level: "nonsense"}, f)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	_, isConsole := ConsoleWriter(f).(zerolog.ConsoleWriter)
	assert.True(t, isConsole)
	assert.False(t, isTerminal(f))
}
