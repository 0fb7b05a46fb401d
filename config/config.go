// Package config loads the optional YAML settings file of qrt2csv.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	Config struct {
		OutputDir string `yaml:"output_dir"`
		LogLevel  string `yaml:"log_level"`
		// HeaderRow is a pointer so an explicit false survives applyDefaults.
		HeaderRow        *bool  `yaml:"header_row"`
		InitialAlignment string `yaml:"initial_alignment"`
	}
)

// Load reads a YAML config file and expands ${VAR} environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.Wrap(err, "parse config yaml")
	}

	return &cfg, nil
}

// LoadAndValidate loads path, applies defaults and validates. An empty path
// yields the defaults.
func LoadAndValidate(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return cfg, nil
}

func (c *Config) WriteHeaderRow() bool {
	return c.HeaderRow == nil || *c.HeaderRow
}
