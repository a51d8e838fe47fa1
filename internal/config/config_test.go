package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if cfg.Width != 80 || cfg.Height != 25 || cfg.InitialSpeed != 5 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if s := cfg.Speed(); s.Min != 1 || s.Max != 10 {
		t.Fatalf("speed bounds = %+v", s)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	content := `
height: 10
width: 20
frame_unit: 20ms
keys:
  quit: x
glyphs:
  alive: "#"
journal:
  path: /tmp/runs.db
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if cfg.Height != 10 || cfg.Width != 20 {
		t.Errorf("size = %dx%d, want 20x10", cfg.Width, cfg.Height)
	}
	if cfg.FrameUnit != 20*time.Millisecond {
		t.Errorf("frame unit = %v, want 20ms", cfg.FrameUnit)
	}
	if cfg.Keys.Quit != "x" || cfg.Keys.Slower != "a" {
		t.Errorf("keys = %+v", cfg.Keys)
	}
	if cfg.Glyphs.Alive != "#" || cfg.Glyphs.Border != "▒" {
		t.Errorf("glyphs = %+v", cfg.Glyphs)
	}
	if cfg.Journal.Path != "/tmp/runs.db" {
		t.Errorf("journal path = %q", cfg.Journal.Path)
	}
	if cfg.InitialSpeed != 5 {
		t.Errorf("unset fields should keep defaults, speed = %d", cfg.InitialSpeed)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("height: [oops"), 0o644)
	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadAppliesEnv(t *testing.T) {
	t.Setenv("TERMLIFE_WIDTH", "40")
	t.Setenv("TERMLIFE_FRAME_UNIT", "5ms")
	t.Setenv("TERMLIFE_LOG_LEVEL", "debug")
	t.Setenv("TERMLIFE_HEIGHT", "not-a-number")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Width != 40 || cfg.FrameUnit != 5*time.Millisecond || cfg.Logging.Level != "debug" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.Height != 25 {
		t.Fatalf("malformed env should be ignored, height = %d", cfg.Height)
	}
}

func TestBindOverrides(t *testing.T) {
	cfg := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"--width=12", "--speed=9", "--journal=runs.db"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Width != 12 || cfg.InitialSpeed != 9 || cfg.Journal.Path != "runs.db" {
		t.Fatalf("flags not bound: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"min speed zero", func(c *Config) { c.MinSpeed = 0 }},
		{"inverted bounds", func(c *Config) { c.MaxSpeed = 0 }},
		{"speed out of range", func(c *Config) { c.InitialSpeed = 11 }},
		{"negative frame unit", func(c *Config) { c.FrameUnit = -time.Second }},
		{"multi-rune key", func(c *Config) { c.Keys.Quit = "qq" }},
		{"duplicate keys", func(c *Config) { c.Keys.Faster = "a" }},
		{"empty glyph", func(c *Config) { c.Glyphs.Dead = "" }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestApplyFlagsOnlyCopiesChanged(t *testing.T) {
	flagged := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagged.Bind(fs)
	if err := fs.Parse([]string{"--height=7", "--frame-unit=1ms"}); err != nil {
		t.Fatal(err)
	}

	fromFile := Default()
	fromFile.Width = 33
	fromFile.Height = 99
	if err := fromFile.ApplyFlags(fs); err != nil {
		t.Fatalf("ApplyFlags() error = %v", err)
	}
	if fromFile.Height != 7 || fromFile.FrameUnit != time.Millisecond {
		t.Fatalf("changed flags not applied: %+v", fromFile)
	}
	if fromFile.Width != 33 {
		t.Fatalf("unchanged flag overwrote file value: width = %d", fromFile.Width)
	}
}
