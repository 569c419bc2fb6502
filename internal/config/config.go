// Package config defines the settings for the hyprconf tool itself and
// locates both those settings and the compositor configuration on disk.
package config

import "strings"

// Config is the top-level tool configuration.
type Config struct {
	Parser ParserConfig `yaml:"parser"`
	Writer WriterConfig `yaml:"writer"`
	Log    LogConfig    `yaml:"log"`
	Lint   LintConfig   `yaml:"lint"`
}

// ParserConfig holds parser settings.
type ParserConfig struct {
	Strict bool `yaml:"strict"`
}

// WriterConfig holds output layout settings.
type WriterConfig struct {
	IndentStyle        string `yaml:"indent_style"`
	IndentWidth        int    `yaml:"indent_width"`
	InsertFinalNewline bool   `yaml:"insert_final_newline"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LintConfig selects the severity of each lint rule ("off", "warn" or
// "error") and excludes files by glob.
type LintConfig struct {
	Rules   map[string]string `yaml:"rules"`
	Exclude []string          `yaml:"exclude"`
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Writer: WriterConfig{
			IndentStyle:        "space",
			IndentWidth:        4,
			InsertFinalNewline: true,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Indent returns one level of indentation.
func (w *WriterConfig) Indent() string {
	if w.IndentStyle == "tab" {
		return "\t"
	}
	width := w.IndentWidth
	if width <= 0 {
		width = 4
	}
	return strings.Repeat(" ", width)
}
