// Package config holds the application configuration and its YAML loader.
package config

import (
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tidy-notepad/internal/logger"
)

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config represents the application configuration.
type Config struct {
	App       ApplicationConfig `yaml:"app"`
	Window    WindowConfig      `yaml:"window"`
	Workspace WorkspaceConfig   `yaml:"workspace"`
	Editor    EditorConfig      `yaml:"editor"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.Window.Validate(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	if err := c.Workspace.Validate(); err != nil {
		return fmt.Errorf("workspace: %w", err)
	}
	return nil
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.By(func(value interface{}) error {
			_, err := logger.ParseLevel(value.(string))
			return err
		})),
		validation.Field(&c.LogFormat, validation.In(LogFormatConsole, LogFormatJSON)),
	)
}

// Level resolves the log level, letting LOG_LEVEL and DEBUG=1 override the file.
func (c *ApplicationConfig) Level() logger.LogLevel {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		if level, err := logger.ParseLevel(env); err == nil {
			return level
		}
	}
	if os.Getenv("DEBUG") == "1" {
		return logger.DebugLevel
	}
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.InfoLevel
	}
	return level
}

// WindowConfig holds the initial window geometry.
type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Validate validates the window configuration.
func (c *WindowConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Width, validation.Required, validation.Min(float32(320))),
		validation.Field(&c.Height, validation.Required, validation.Min(float32(240))),
	)
}

// WorkspaceConfig controls the file sidebar.
type WorkspaceConfig struct {
	Root       string   `yaml:"root"`
	Extensions []string `yaml:"extensions"`
	MaxEntries int      `yaml:"max_entries"`
	Watch      bool     `yaml:"watch"`
}

// Validate validates the workspace configuration and normalises extensions.
func (c *WorkspaceConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.MaxEntries, validation.Required, validation.Min(1)),
	); err != nil {
		return err
	}
	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			return fmt.Errorf("extensions: entry %d is empty", i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extensions[i] = ext
	}
	return nil
}

// EditorConfig holds editor behaviour settings.
type EditorConfig struct {
	Placeholder   string `yaml:"placeholder"`
	ConfirmOnQuit bool   `yaml:"confirm_on_quit"`
	// FilterOpenDialog limits the open dialog to the workspace extensions.
	FilterOpenDialog bool `yaml:"filter_open_dialog"`
}

// OpenDialogExtensions returns the open dialog filter, nil for all files.
func (c *Config) OpenDialogExtensions() []string {
	if !c.Editor.FilterOpenDialog {
		return nil
	}
	return c.Workspace.Extensions
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  "info",
			LogFormat: LogFormatConsole,
		},
		Window: WindowConfig{
			Width:  1000,
			Height: 700,
		},
		Workspace: WorkspaceConfig{
			Root:       ".",
			Extensions: []string{".txt", ".md"},
			MaxEntries: 500,
			Watch:      true,
		},
		Editor: EditorConfig{
			Placeholder:   "Start typing your notes here...",
			ConfirmOnQuit: true,
		},
	}
}
