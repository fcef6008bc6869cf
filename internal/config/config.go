package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"termhex/internal/extract"
	"termhex/internal/render"
)

type View struct {
	StartMode     string `toml:"start_mode"`
	ColorCharMode bool   `toml:"color_char_mode"`
}

type Export struct {
	Suffix string `toml:"suffix"`
}

type Debug struct {
	LogFile string `toml:"log_file"`
}

type Config struct {
	View   View   `toml:"view"`
	Export Export `toml:"export"`
	Debug  Debug  `toml:"debug"`
}

func DefaultConfig() *Config {
	return &Config{
		View: View{
			StartMode: "hex",
		},
		Export: Export{
			Suffix: extract.DefaultSuffix,
		},
	}
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "termhex.toml"
	}
	return filepath.Join(home, ".config", "termhex", "termhex.toml")
}

// Load reads the config at ConfigPath.
func Load() (*Config, error) {
	return LoadFile(ConfigPath())
}

// LoadFile reads the config at path. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := ParseMode(c.View.StartMode); err != nil {
		return err
	}
	if c.Export.Suffix == "" {
		c.Export.Suffix = extract.DefaultSuffix
	}
	return nil
}

// Mode returns the configured start mode, hex when unset or invalid.
func (c *Config) Mode() render.Mode {
	m, err := ParseMode(c.View.StartMode)
	if err != nil {
		return render.ModeHex
	}
	return m
}

func ParseMode(s string) (render.Mode, error) {
	switch s {
	case "", "hex":
		return render.ModeHex, nil
	case "char":
		return render.ModeChar, nil
	}
	return render.ModeHex, fmt.Errorf("unknown start_mode %q (want \"hex\" or \"char\")", s)
}
