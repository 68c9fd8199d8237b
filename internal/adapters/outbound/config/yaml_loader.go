package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fnwatchdog/fnwatchdog/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLLoader implements domain.ConfigLoader by reading .fnwatchdog.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .fnwatchdog.yaml from projectPath.
// Returns DefaultConfig if the file does not exist. Relative definition
// sources and scan roots are resolved against projectPath.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, domain.ConfigFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, &domain.ConfigError{
			Kind:    domain.InvalidConfig,
			Message: fmt.Sprintf("parsing %s", domain.ConfigFileName),
			Err:     err,
		}
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, &domain.ConfigError{
			Kind:    domain.InvalidConfig,
			Message: fmt.Sprintf("invalid %s", domain.ConfigFileName),
			Err:     err,
		}
	}

	cfg.DefinitionSources = resolvePaths(projectPath, cfg.DefinitionSources)
	cfg.ScanRoots = resolvePaths(projectPath, cfg.ScanRoots)

	return cfg, nil
}

// Merge overlays explicit overrides on top of base.
// Explicit (non-zero) values always win; a nil DefinitionSources keeps base's.
func Merge(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base

	if override.DefinitionSources != nil {
		result.DefinitionSources = override.DefinitionSources
	}

	// Placeholders merge key by key.
	if len(override.Placeholders) > 0 {
		merged := make(map[string]string, len(base.Placeholders)+len(override.Placeholders))
		for k, v := range base.Placeholders {
			merged[k] = v
		}
		for k, v := range override.Placeholders {
			merged[k] = v
		}
		result.Placeholders = merged
	}

	if len(override.ScanRoots) > 0 {
		result.ScanRoots = override.ScanRoots
	}
	if override.SourceSet != "" {
		result.SourceSet = override.SourceSet
	}
	if override.FailOnViolation != nil {
		result.FailOnViolation = override.FailOnViolation
	}
	if override.Parallelism != 0 {
		result.Parallelism = override.Parallelism
	}
	if override.Locale != "" {
		result.Locale = override.Locale
	}

	return result
}

func resolvePaths(base string, paths []string) []string {
	if paths == nil {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			out[i] = p
		} else {
			out[i] = filepath.Join(base, p)
		}
	}
	return out
}
