package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/labelplot/labelplot/pkg/pipeline"
)

// fileConfig holds user defaults loaded from the config file. Every field is
// optional; explicit flags always win.
type fileConfig struct {
	Width   float64  `toml:"width"`
	Height  float64  `toml:"height"`
	Style   string   `toml:"style"`
	Formats []string `toml:"formats"`
	Scale   float64  `toml:"scale"`
}

// configPath returns the config file location using XDG standard
// (~/.config/labelplot/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file. A missing file yields a zero config and
// no error; a malformed file is an error so typos do not silently vanish.
func loadConfig() (fileConfig, error) {
	path, err := configPath()
	if err != nil {
		return fileConfig{}, nil
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (fileConfig, error) {
	var cfg fileConfig
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// apply fills pipeline options the user did not set explicitly.
func (fc fileConfig) apply(opts *pipeline.Options) {
	if opts.Width == 0 && fc.Width > 0 {
		opts.Width = fc.Width
	}
	if opts.Height == 0 && fc.Height > 0 {
		opts.Height = fc.Height
	}
	if opts.Style == "" && fc.Style != "" {
		opts.Style = fc.Style
	}
	if len(opts.Formats) == 0 && len(fc.Formats) > 0 {
		opts.Formats = fc.Formats
	}
	if opts.Scale == 0 && fc.Scale > 0 {
		opts.Scale = fc.Scale
	}
}
