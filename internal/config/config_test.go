package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/mte/internal/config/loader"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func noEnv() *loader.EnvLoader {
	return loader.NewEnvLoader().WithLookup(func(string) (string, bool) { return "", false })
}

func envOf(vars map[string]string) *loader.EnvLoader {
	return loader.NewEnvLoader().WithLookup(func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	})
}

func TestDefault(t *testing.T) {
	c := Default()

	if !c.Editor.AutoIndent {
		t.Error("auto-indent should default to on")
	}
	if c.Editor.IndentChars != " \t" {
		t.Errorf("IndentChars = %q", c.Editor.IndentChars)
	}
	if !c.UI.ReverseStatus {
		t.Error("reverse status should default to on")
	}
	if c.Logging.Level != "info" || c.Logging.File != "" {
		t.Errorf("Logging = %+v", c.Logging)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromNoSources(t *testing.T) {
	c, err := LoadFrom()
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if *c != *Default() {
		t.Errorf("got %+v, want defaults", c)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[editor]
autoIndent = false

[logging]
level = "DEBUG"
file = "/tmp/mte.log"
`)

	c, err := LoadFrom(loader.NewTOMLLoader(path), noEnv())
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if c.Editor.AutoIndent {
		t.Error("file should disable auto-indent")
	}
	if c.Editor.IndentChars != " \t" {
		t.Errorf("unset keys keep defaults, got %q", c.Editor.IndentChars)
	}
	if c.Logging.Level != "debug" {
		t.Errorf("level = %q, want normalised debug", c.Logging.Level)
	}
	if c.Logging.File != "/tmp/mte.log" {
		t.Errorf("file = %q", c.Logging.File)
	}
	if !c.UI.ReverseStatus {
		t.Error("reverse status should keep its default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")

	c, err := LoadFrom(loader.NewTOMLLoader(path), noEnv())
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if *c != *Default() {
		t.Errorf("got %+v, want defaults", c)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[logging]\nlevel = \"debug\"\n[ui]\nreverseStatus = true\n")
	env := envOf(map[string]string{
		"MTE_LOG_LEVEL":      "error",
		"MTE_REVERSE_STATUS": "false",
	})

	c, err := LoadFrom(loader.NewTOMLLoader(path), env)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if c.Logging.Level != "error" {
		t.Errorf("level = %q, want error", c.Logging.Level)
	}
	if c.UI.ReverseStatus {
		t.Error("environment should disable reverse status")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"bad level", "[logging]\nlevel = \"loud\"\n", ErrInvalidLogLevel},
		{"bad indent chars", "[editor]\nindentChars = \"x\"\n", ErrInvalidIndentChars},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(loader.NewTOMLLoader(writeConfig(t, tt.content)), noEnv())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[editor\n"},
		{"unknown key", "[editor]\ntabSize = 4\n"},
		{"wrong type", "[editor]\nautoIndent = \"sometimes\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFrom(loader.NewTOMLLoader(writeConfig(t, tt.content)), noEnv()); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadUsesEnvironment(t *testing.T) {
	t.Setenv("MTE_AUTO_INDENT", "no")
	t.Setenv("MTE_LOG_LEVEL", "warn")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Editor.AutoIndent || c.Logging.Level != "warn" {
		t.Errorf("got %+v", c)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultPath(); got != filepath.Join("/xdg", "mte", "config.toml") {
		t.Errorf("DefaultPath = %q", got)
	}
}
