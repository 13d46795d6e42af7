package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/mte/internal/config/loader"
)

// Config is the typed editor configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	UI      UIConfig      `toml:"ui"`
	Logging LoggingConfig `toml:"logging"`
}

// EditorConfig holds editing behaviour.
type EditorConfig struct {
	// AutoIndent carries the leading blanks of a line to the line
	// created by splitting it.
	AutoIndent bool `toml:"autoIndent"`
	// IndentChars are the characters auto-indent treats as blanks.
	IndentChars string `toml:"indentChars"`
}

// UIConfig holds display settings.
type UIConfig struct {
	ReverseStatus bool `toml:"reverseStatus"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level"`
	// File receives log output. Empty discards logs.
	File string `toml:"file"`
}

// Log levels accepted in LoggingConfig.Level.
var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			AutoIndent:  true,
			IndentChars: " \t",
		},
		UI: UIConfig{
			ReverseStatus: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the configuration file used when none is given.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "mte", "config.toml")
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	level := strings.ToLower(c.Logging.Level)
	found := false
	for _, l := range logLevels {
		if level == l {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidLogLevel, c.Logging.Level, strings.Join(logLevels, ", "))
	}
	for i := 0; i < len(c.Editor.IndentChars); i++ {
		switch c.Editor.IndentChars[i] {
		case ' ', '\t':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidIndentChars, c.Editor.IndentChars)
		}
	}
	return nil
}

// Load builds the configuration from defaults, the TOML file at path and
// the environment. An empty path skips the file.
func Load(path string) (*Config, error) {
	return LoadFrom(loader.NewTOMLLoader(path), loader.NewEnvLoader())
}

// LoadFrom builds the configuration from defaults overlaid by each source
// in turn.
func LoadFrom(sources ...loader.Loader) (*Config, error) {
	merged, err := toMap(Default())
	if err != nil {
		return nil, err
	}
	for _, src := range sources {
		layer, err := src.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, layer)
	}
	return decode(merged)
}

// toMap converts a Config into the map form loaders produce.
func toMap(c *Config) (map[string]any, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding defaults: %w", err)
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding defaults: %w", err)
	}
	return m, nil
}

// decode turns a merged map into a validated Config.
func decode(m map[string]any) (*Config, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	cfg := &Config{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
