package config

import (
	"time"

	"github.com/arthur-debert/batch-rename/pkg/errors"
	"github.com/arthur-debert/batch-rename/pkg/ui/styles"
)

// Config holds the effective settings
type Config struct {
	Concurrency Concurrency `koanf:"concurrency" toml:"concurrency"`
	Command     Command     `koanf:"command" toml:"command"`
	Temp        Temp        `koanf:"temp" toml:"temp"`
	Prompt      Prompt      `koanf:"prompt" toml:"prompt"`
}

// Concurrency bounds the two parallel phases of a batch
type Concurrency struct {
	DryRun int `koanf:"dry_run" toml:"dry_run"`
	Rename int `koanf:"rename" toml:"rename"`
}

// Command configures how the rename command is run
type Command struct {
	Timeout Duration `koanf:"timeout" toml:"timeout"`
}

// Temp configures scratch directories
type Temp struct {
	Dir string `koanf:"dir" toml:"dir"`
}

// Prompt configures the confirmation prompt
type Prompt struct {
	Color string `koanf:"color" toml:"color"`
}

// Duration is a time.Duration read and written in time.ParseDuration form
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Validate checks that the settings are usable
func (c *Config) Validate() error {
	if c.Concurrency.DryRun < 1 {
		return errors.Newf(errors.ErrConfigValid, "concurrency.dry_run must be at least 1, got %d", c.Concurrency.DryRun).
			WithDetail("key", "concurrency.dry_run")
	}
	if c.Concurrency.Rename < 1 {
		return errors.Newf(errors.ErrConfigValid, "concurrency.rename must be at least 1, got %d", c.Concurrency.Rename).
			WithDetail("key", "concurrency.rename")
	}
	if c.Command.Timeout < 0 {
		return errors.Newf(errors.ErrConfigValid, "command.timeout must not be negative, got %s", time.Duration(c.Command.Timeout)).
			WithDetail("key", "command.timeout")
	}
	if _, err := styles.ParseColorMode(c.Prompt.Color); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid prompt.color").
			WithDetail("key", "prompt.color")
	}
	return nil
}

// ColorMode returns the parsed prompt.color setting
func (c *Config) ColorMode() styles.ColorMode {
	mode, err := styles.ParseColorMode(c.Prompt.Color)
	if err != nil {
		return styles.ColorAuto
	}
	return mode
}

// Timeout returns command.timeout as a time.Duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Command.Timeout)
}
