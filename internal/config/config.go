// Package config loads prosecheck settings from an optional YAML file, a
// .env file and environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dshills/prosecheck/internal/lexicon"
	"github.com/dshills/prosecheck/internal/profile"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = ".prosecheck.yaml"

// Environment overrides.
const (
	EnvTone     = "PROSECHECK_TONE"
	EnvFormat   = "PROSECHECK_FORMAT"
	EnvLogLevel = "PROSECHECK_LOG_LEVEL"
)

// Config is the full settings tree.
type Config struct {
	Tone    string        `yaml:"tone"`
	Format  string        `yaml:"format"`
	Log     LogConfig     `yaml:"log"`
	Lexicon LexiconConfig `yaml:"lexicon"`
	Watch   WatchConfig   `yaml:"watch"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LexiconConfig lists additions to the built-in lexicon.
type LexiconConfig struct {
	WeakWords     []string          `yaml:"weak_words"`
	FillerPhrases []string          `yaml:"filler_phrases"`
	Cliches       []string          `yaml:"cliches"`
	ComplexWords  map[string]string `yaml:"complex_words"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Tone:   profile.Default,
		Format: "markdown",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Watch: WatchConfig{
			Debounce: 300 * time.Millisecond,
		},
	}
}

// Load reads .env (if present), then the YAML file at path (if present), then
// applies environment overrides. A missing file is only tolerated at
// DefaultPath; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv(EnvTone); v != "" {
		cfg.Tone = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if _, err := profile.Load(c.Tone); err != nil {
		return fmt.Errorf("config: tone: %w", err)
	}
	switch strings.ToLower(c.Format) {
	case "json", "markdown":
	default:
		return fmt.Errorf("config: format %q is not one of json, markdown", c.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: log level %q is not one of debug, info, warn, warning, error", c.Log.Level)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("config: watch debounce must not be negative")
	}
	return nil
}

// BuildLexicon returns the built-in lexicon extended with the configured
// additions.
func (c *Config) BuildLexicon() *lexicon.Lexicon {
	return lexicon.Default().Extend(lexicon.Extras{
		WeakWords:     c.Lexicon.WeakWords,
		FillerPhrases: c.Lexicon.FillerPhrases,
		Cliches:       c.Lexicon.Cliches,
		ComplexWords:  c.Lexicon.ComplexWords,
	})
}
