package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/playbill/playbill/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".playbill.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .playbill.yaml.
type YAMLLoader struct{}

var _ domain.ConfigLoader = (*YAMLLoader)(nil)

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .playbill.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate before merging so typos in the raw file are reported.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig overlays explicit settings on top of defaults.
// Explicit (non-zero) values always win.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.OnError != "" {
		result.OnError = override.OnError
	}
	if override.Parallel {
		result.Parallel = true
	}
	if override.Plays != "" {
		result.Plays = override.Plays
	}
	if override.Invoices != "" {
		result.Invoices = override.Invoices
	}
	if override.ExportDir != "" {
		result.ExportDir = override.ExportDir
	}

	return result
}
