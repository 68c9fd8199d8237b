package domain

import (
	"fmt"
	"regexp"
)

// ConfigFileName is the project-level configuration file.
const ConfigFileName = ".fnwatchdog.yaml"

// DefaultSourceSet is the source set whose directories are scanned when no
// scan roots are configured.
const DefaultSourceSet = "main"

// ProjectConfig holds project-level configuration loaded from .fnwatchdog.yaml
// and overlaid with command-line flags.
//
// DefinitionSources distinguishes nil (never configured) from an explicit
// empty list. FailOnViolation is a pointer so that "unset" defaults to true.
type ProjectConfig struct {
	DefinitionSources []string          `yaml:"definition_sources" json:"definition_sources,omitempty"`
	Placeholders      map[string]string `yaml:"placeholders"       json:"placeholders,omitempty"`
	ScanRoots         []string          `yaml:"scan_roots"         json:"scan_roots,omitempty"`
	SourceSet         string            `yaml:"source_set"         json:"source_set,omitempty"`
	FailOnViolation   *bool             `yaml:"fail_on_violation"  json:"fail_on_violation,omitempty"`
	Parallelism       int               `yaml:"parallelism"        json:"parallelism,omitempty"`
	Locale            string            `yaml:"locale"             json:"locale,omitempty"`
}

// DefaultConfig returns a zero-value config: no definition sources, fallback
// scan roots, fail on violation.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// EffectiveSourceSet returns the configured source set or DefaultSourceSet.
func (c ProjectConfig) EffectiveSourceSet() string {
	if c.SourceSet == "" {
		return DefaultSourceSet
	}
	return c.SourceSet
}

var placeholderNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	for i, src := range c.DefinitionSources {
		if src == "" {
			return fmt.Errorf("definition_sources[%d] must not be empty", i)
		}
	}

	for name := range c.Placeholders {
		if !placeholderNameRe.MatchString(name) {
			return fmt.Errorf("invalid placeholder name %q", name)
		}
	}

	for i, root := range c.ScanRoots {
		if root == "" {
			return fmt.Errorf("scan_roots[%d] must not be empty", i)
		}
	}

	if c.Parallelism < 0 {
		return fmt.Errorf("parallelism must be >= 0 (got %d)", c.Parallelism)
	}

	return nil
}
