package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"editorscan/internal/editors"
)

// EnvPrefix is prepended to environment overrides, e.g. EDITORSCAN_EDITOR.
const EnvPrefix = "EDITORSCAN"

// Config captures user preferences for editorscan.
type Config struct {
	Version int `yaml:"version" json:"version" mapstructure:"version"`
	// Editor is the label of the preferred editor, e.g. "Visual Studio Code".
	Editor   string `yaml:"editor" json:"editor" mapstructure:"editor"`
	LogLevel string `yaml:"log_level" json:"log_level" mapstructure:"log_level"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Version:  1,
		Editor:   "",
		LogLevel: "info",
	}
}

// Load reads the YAML configuration at path from fsys, overlaid with
// EDITORSCAN_* environment variables. A missing file yields the defaults.
func Load(fsys afero.Fs, path string) (Config, error) {
	defaults := Default()

	v := viper.New()
	v.SetFs(fsys)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("version", defaults.Version)
	v.SetDefault("editor", defaults.Editor)
	v.SetDefault("log_level", defaults.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills fields the YAML left empty.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}

// PreferredEditor returns the configured editor if its label is recognised.
// An empty or unknown label is reported as absent.
func (c Config) PreferredEditor() (editors.Editor, bool) {
	if c.Editor == "" {
		return 0, false
	}
	return editors.Parse(c.Editor)
}

// Marshal returns the YAML encoding of the configuration.
func (c Config) Marshal() ([]byte, error) {
	buf, err := yaml.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return buf, nil
}

// Save writes the configuration to path on fsys.
func (c Config) Save(fsys afero.Fs, path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
