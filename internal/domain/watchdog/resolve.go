// Package watchdog holds the pure decision logic of a compliance run: turning
// raw configuration into an execution plan, merging per-root reports, and the
// final pass/fail gate.
package watchdog

import (
	"path/filepath"

	"github.com/fnwatchdog/fnwatchdog/internal/domain"
)

// Resolve turns raw configuration into an ExecutionPlan. When no scan roots
// are configured it asks fallback for the project's default roots; an empty
// result there is not an error. Paths are not checked for existence here.
func Resolve(cfg domain.ProjectConfig, fallback func() []string) (domain.ExecutionPlan, error) {
	if cfg.DefinitionSources == nil {
		return domain.ExecutionPlan{}, &domain.ConfigError{Kind: domain.MissingDefinitionSources}
	}

	roots := cfg.ScanRoots
	if len(roots) == 0 && fallback != nil {
		roots = fallback()
	}

	placeholders := make(map[string]string, len(cfg.Placeholders))
	for k, v := range cfg.Placeholders {
		placeholders[k] = v
	}

	failOnViolation := true
	if cfg.FailOnViolation != nil {
		failOnViolation = *cfg.FailOnViolation
	}

	parallelism := cfg.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	return domain.ExecutionPlan{
		DefinitionSources: append([]string{}, cfg.DefinitionSources...),
		Placeholders:      placeholders,
		ScanRoots:         uniqueRoots(roots),
		FailOnViolation:   failOnViolation,
		Parallelism:       parallelism,
	}, nil
}

// uniqueRoots collapses roots that are equal after cleaning, keeping the
// first occurrence in place.
func uniqueRoots(roots []string) []string {
	seen := make(map[string]bool, len(roots))
	out := make([]string, 0, len(roots))
	for _, r := range roots {
		key := filepath.Clean(r)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}
