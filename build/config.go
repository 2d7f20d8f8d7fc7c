package main

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

// loadConfig reads the site configuration. The format follows the file
// extension; relative static_dir paths resolve against the config directory.
func loadConfig(path string) (*config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	if cfg.StaticDir != "" && !filepath.IsAbs(cfg.StaticDir) {
		cfg.StaticDir = filepath.Join(filepath.Dir(path), cfg.StaticDir)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}

	return &cfg, nil
}

// author returns the configured author, falling back to the site title
func (c *config) author() string {
	if c.Author != "" {
		return c.Author
	}
	return c.Title
}
