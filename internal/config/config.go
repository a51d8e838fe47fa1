// Package config loads termlife settings from defaults, an optional YAML
// file, environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"termlife/internal/core"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all termlife settings.
type Config struct {
	Height       int           `yaml:"height"`
	Width        int           `yaml:"width"`
	InitialSpeed int           `yaml:"initial_speed"`
	MinSpeed     int           `yaml:"min_speed"`
	MaxSpeed     int           `yaml:"max_speed"`
	FrameUnit    time.Duration `yaml:"frame_unit"`

	Keys    KeysConfig    `yaml:"keys"`
	Glyphs  GlyphsConfig  `yaml:"glyphs"`
	Logging LoggingConfig `yaml:"logging"`
	Journal JournalConfig `yaml:"journal"`
}

// KeysConfig binds single-rune keys to loop controls.
type KeysConfig struct {
	Quit   string `yaml:"quit"`
	Slower string `yaml:"slower"`
	Faster string `yaml:"faster"`
}

// GlyphsConfig selects the symbols drawn for each cell class.
type GlyphsConfig struct {
	Border string `yaml:"border"`
	Alive  string `yaml:"alive"`
	Dead   string `yaml:"dead"`
}

// LoggingConfig configures operational logging.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `yaml:"level"`
	// File receives log output. Empty means stderr in headless mode and
	// nowhere while the terminal screen is active.
	File string `yaml:"file"`
}

// JournalConfig points at the optional sqlite run journal.
type JournalConfig struct {
	Path string `yaml:"path"`
}

// Default returns the classic 80x25 board at speed 5.
func Default() *Config {
	return &Config{
		Height:       25,
		Width:        80,
		InitialSpeed: 5,
		MinSpeed:     1,
		MaxSpeed:     10,
		FrameUnit:    50 * time.Millisecond,
		Keys:         KeysConfig{Quit: "q", Slower: "a", Faster: "z"},
		Glyphs:       GlyphsConfig{Border: "▒", Alive: "█", Dead: "░"},
		Logging:      LoggingConfig{Level: "info"},
	}
}

// Load returns defaults overlaid with path (when non-empty) and the
// environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file on top of the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet. Flags parsed
// after Load override file and environment values.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.InitialSpeed, "speed", c.InitialSpeed, "initial speed (higher is slower)")
	fs.IntVar(&c.MinSpeed, "min-speed", c.MinSpeed, "fastest allowed speed")
	fs.IntVar(&c.MaxSpeed, "max-speed", c.MaxSpeed, "slowest allowed speed")
	fs.DurationVar(&c.FrameUnit, "frame-unit", c.FrameUnit, "delay per speed step")
	fs.StringVar(&c.Logging.Level, "log-level", c.Logging.Level, "log level: info, debug, trace")
	fs.StringVar(&c.Logging.File, "log-file", c.Logging.File, "write logs to this file")
	fs.StringVar(&c.Journal.Path, "journal", c.Journal.Path, "sqlite file recording finished runs")
}

// ApplyFlags copies every flag that was set on fs onto c. It lets flags
// parsed against defaults win over values loaded later from a file.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	target := pflag.NewFlagSet("config", pflag.ContinueOnError)
	c.Bind(target)
	var firstErr error
	fs.Visit(func(f *pflag.Flag) {
		if target.Lookup(f.Name) == nil || firstErr != nil {
			return
		}
		if err := target.Set(f.Name, f.Value.String()); err != nil {
			firstErr = fmt.Errorf("applying --%s: %w", f.Name, err)
		}
	})
	return firstErr
}

// Speed returns the configured speed bounds.
func (c *Config) Speed() core.SpeedControl {
	return core.SpeedControl{Min: c.MinSpeed, Max: c.MaxSpeed}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Height <= 0 || c.Width <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.MinSpeed < 1 || c.MaxSpeed < c.MinSpeed {
		return fmt.Errorf("%w: speed bounds [%d,%d]", ErrInvalid, c.MinSpeed, c.MaxSpeed)
	}
	if c.InitialSpeed < c.MinSpeed || c.InitialSpeed > c.MaxSpeed {
		return fmt.Errorf("%w: initial_speed %d outside [%d,%d]", ErrInvalid, c.InitialSpeed, c.MinSpeed, c.MaxSpeed)
	}
	if c.FrameUnit < 0 {
		return fmt.Errorf("%w: frame_unit must be non-negative, got %v", ErrInvalid, c.FrameUnit)
	}
	keys := map[string]string{"quit": c.Keys.Quit, "slower": c.Keys.Slower, "faster": c.Keys.Faster}
	seen := map[string]string{}
	for name, k := range keys {
		if utf8.RuneCountInString(k) != 1 {
			return fmt.Errorf("%w: key %s must be a single character, got %q", ErrInvalid, name, k)
		}
		if other, dup := seen[k]; dup {
			return fmt.Errorf("%w: keys %s and %s share %q", ErrInvalid, other, name, k)
		}
		seen[k] = name
	}
	glyphs := map[string]string{"border": c.Glyphs.Border, "alive": c.Glyphs.Alive, "dead": c.Glyphs.Dead}
	for name, g := range glyphs {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("%w: glyph %s must be a single character, got %q", ErrInvalid, name, g)
		}
	}
	validLevels := map[string]bool{"": true, "info": true, "debug": true, "trace": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("%w: log level %q (valid: info, debug, trace)", ErrInvalid, c.Logging.Level)
	}
	return nil
}

func applyEnvOverrides(c *Config) {
	intVar := func(name string, dst *int) {
		if v := os.Getenv(name); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}
	intVar("TERMLIFE_HEIGHT", &c.Height)
	intVar("TERMLIFE_WIDTH", &c.Width)
	intVar("TERMLIFE_SPEED", &c.InitialSpeed)

	if v := os.Getenv("TERMLIFE_FRAME_UNIT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.FrameUnit = d
		}
	}
	if v := os.Getenv("TERMLIFE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("TERMLIFE_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("TERMLIFE_JOURNAL"); v != "" {
		c.Journal.Path = v
	}
}
