package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidy-notepad/internal/logger"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, float32(1000), cfg.Window.Width)
	assert.Equal(t, float32(700), cfg.Window.Height)
	assert.Equal(t, []string{".txt", ".md"}, cfg.Workspace.Extensions)
}

func TestOpenDialogListsAllFilesByDefault(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Nil(t, cfg.OpenDialogExtensions())

	cfg.Editor.FilterOpenDialog = true
	assert.Equal(t, []string{".txt", ".md"}, cfg.OpenDialogExtensions())
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv("NOTES_DIR", "/srv/notes")
	path := writeConfig(t, `
app:
  log_level: debug
  log_format: json
workspace:
  root: ${NOTES_DIR}
  extensions: ["TXT", "log"]
  max_entries: 10
  watch: false
`)

	cfg := NewDefaultConfig()
	require.NoError(t, Load(path, cfg))

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, LogFormatJSON, cfg.App.LogFormat)
	assert.Equal(t, "/srv/notes", cfg.Workspace.Root)
	assert.Equal(t, []string{".txt", ".log"}, cfg.Workspace.Extensions)
	assert.Equal(t, 10, cfg.Workspace.MaxEntries)
	assert.False(t, cfg.Workspace.Watch)
	// untouched sections keep their defaults
	assert.Equal(t, float32(1000), cfg.Window.Width)
	assert.True(t, cfg.Editor.ConfirmOnQuit)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"log level":  "app:\n  log_level: loud\n",
		"log format": "app:\n  log_format: xml\n",
		"width":      "window:\n  width: 10\n",
		"root":       "workspace:\n  root: \"\"\n",
		"extension":  "workspace:\n  extensions: [\"\"]\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			err := Load(writeConfig(t, body), cfg)
			assert.ErrorContains(t, err, "config validation failed")
		})
	}
}

func TestLoadBrokenYAML(t *testing.T) {
	cfg := NewDefaultConfig()
	err := Load(writeConfig(t, "app: [unterminated"), cfg)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestLoadOptionalMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg := NewDefaultConfig()
	require.NoError(t, LoadOptional(missing, false, cfg))
	assert.Equal(t, NewDefaultConfig(), cfg)

	err := LoadOptional(missing, true, cfg)
	assert.ErrorContains(t, err, "config file not found")
}

func TestLevelEnvironmentOverrides(t *testing.T) {
	cfg := NewDefaultConfig()
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")
	assert.Equal(t, logger.InfoLevel, cfg.App.Level())

	t.Setenv("DEBUG", "1")
	assert.Equal(t, logger.DebugLevel, cfg.App.Level())

	t.Setenv("LOG_LEVEL", "error")
	assert.Equal(t, logger.ErrorLevel, cfg.App.Level())
}
