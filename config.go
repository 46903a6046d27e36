package lye

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// ConfigEnvVar names the environment variable consulted for a config path
// when none is given explicitly.
const ConfigEnvVar = "LYE_CONFIG"

// Color modes for Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds user settings for the interpreter and the REPL. It is read
// from YAML:
//
//	prompt: "lye> "
//	continuation: "...  "
//	history: ~/.lye_history
//	color: auto        # auto | always | never
//	scoping: dynamic   # dynamic | lexical
//	banner: true
type Config struct {
	Prompt       string `yaml:"prompt"`
	Continuation string `yaml:"continuation"`
	History      string `yaml:"history"`
	Color        string `yaml:"color"`
	Scoping      string `yaml:"scoping"`
	Banner       *bool  `yaml:"banner"`

	// Path is the file the config was loaded from, empty for defaults.
	Path string `yaml:"-"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	banner := true
	return &Config{
		Prompt:       "lye> ",
		Continuation: "...  ",
		History:      defaultHistoryPath(),
		Color:        ColorAuto,
		Scoping:      Dynamic.String(),
		Banner:       &banner,
	}
}

// ShowBanner reports whether the REPL should print its banner.
func (c *Config) ShowBanner() bool {
	return c.Banner == nil || *c.Banner
}

// ParseConfig decodes YAML on top of the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.History = expandHome(cfg.History)
	return cfg, nil
}

// LoadConfig reads the first config found among path, $LYE_CONFIG and
// $HOME/.lye.yaml. An explicit path (flag or env) must exist; a missing
// home file silently yields the defaults.
func LoadConfig(path string) (*Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}
	if path == "" {
		explicit = false
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".lye.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("error reading config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("wrong value for color: %q", c.Color)
	}
	if _, err := ParseScoping(c.Scoping); err != nil {
		return err
	}
	return nil
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lye_history")
}

func expandHome(p string) string {
	if p != "~" && !(len(p) > 1 && p[:2] == "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
