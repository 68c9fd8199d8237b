// Package engine is a regular-expression based convention engine. Definition
// documents list allowed package identifiers and, per package rule, the file
// names allowed inside matching packages.
package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fnwatchdog/fnwatchdog/internal/domain"
)

// PackageSeparator joins the directory names of a package identifier.
const PackageSeparator = "."

type fileMatcher struct {
	re    *regexp.Regexp
	style string
}

func (m fileMatcher) matches(name string) bool {
	if m.re != nil && !m.re.MatchString(name) {
		return false
	}
	if m.style != "" && !matchesStyle(m.style, name) {
		return false
	}
	return true
}

type packageMatcher struct {
	re    *regexp.Regexp
	files []fileMatcher
}

// Engine implements domain.ConventionEngine. It is immutable after New and
// safe for concurrent Check calls.
type Engine struct {
	packages []packageMatcher
	ignore   []string
}

// New loads and compiles all definition sources into one rule set. Rules of
// later sources are appended to those of earlier ones.
func New(sources []string, placeholders map[string]string) (*Engine, error) {
	e := &Engine{}
	for _, src := range sources {
		def, err := LoadDefinition(src)
		if err != nil {
			return nil, err
		}
		if err := e.add(def, placeholders); err != nil {
			return nil, fmt.Errorf("definition %s: %w", src, err)
		}
	}
	return e, nil
}

// Factory adapts New to domain.EngineFactory.
func Factory(sources []string, placeholders map[string]string) (domain.ConventionEngine, error) {
	e, err := New(sources, placeholders)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) add(def *Definition, placeholders map[string]string) error {
	for i, pr := range def.Packages {
		re, err := compilePattern(pr.Pattern, placeholders)
		if err != nil {
			return fmt.Errorf("packages[%d]: %w", i, err)
		}
		pm := packageMatcher{re: re}
		for j, fr := range pr.Files {
			if fr.Pattern == "" && fr.Style == "" {
				return fmt.Errorf("packages[%d].files[%d]: pattern or style required", i, j)
			}
			if fr.Style != "" && !validStyle(fr.Style) {
				return fmt.Errorf("packages[%d].files[%d]: unknown style %q", i, j, fr.Style)
			}
			fm := fileMatcher{style: fr.Style}
			if fr.Pattern != "" {
				if fm.re, err = compilePattern(fr.Pattern, placeholders); err != nil {
					return fmt.Errorf("packages[%d].files[%d]: %w", i, j, err)
				}
			}
			pm.files = append(pm.files, fm)
		}
		e.packages = append(e.packages, pm)
	}

	for _, g := range def.Ignore {
		if _, err := filepath.Match(g, ""); err != nil {
			return fmt.Errorf("ignore %q: %w", g, err)
		}
		e.ignore = append(e.ignore, g)
	}
	return nil
}

// Check walks root and returns every package that violates the rules. A
// package no rule allows maps to an empty set; otherwise it maps to its
// non-compliant files and is omitted when there are none.
func (e *Engine) Check(root string) (domain.ViolationReport, error) {
	files, err := e.collect(root)
	if err != nil {
		return nil, err
	}

	report := domain.ViolationReport{}
	for pkg, names := range files {
		matched := e.matchPackage(pkg)
		if len(matched) == 0 {
			report[pkg] = domain.NewFileSet()
			continue
		}

		bad := domain.NewFileSet()
		for _, name := range names {
			if !fileAllowed(matched, name) {
				bad.Add(name)
			}
		}
		if len(bad) > 0 {
			report[pkg] = bad
		}
	}
	return report, nil
}

// collect groups the non-ignored regular files under root by package
// identifier. Hidden directories are skipped.
func (e *Engine) collect(root string) (map[string][]string, error) {
	files := make(map[string][]string)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || e.ignored(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil {
			return err
		}
		pkg := packageID(rel)
		files[pkg] = append(files[pkg], d.Name())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

func (e *Engine) ignored(name string) bool {
	for _, g := range e.ignore {
		if ok, _ := filepath.Match(g, name); ok {
			return true
		}
	}
	return false
}

func (e *Engine) matchPackage(pkg string) []packageMatcher {
	var out []packageMatcher
	for _, pm := range e.packages {
		if pm.re.MatchString(pkg) {
			out = append(out, pm)
		}
	}
	return out
}

func fileAllowed(rules []packageMatcher, name string) bool {
	for _, pm := range rules {
		if len(pm.files) == 0 {
			return true
		}
		for _, fm := range pm.files {
			if fm.matches(name) {
				return true
			}
		}
	}
	return false
}

// packageID converts a root-relative directory into a package identifier.
// The root itself is the unnamed package "".
func packageID(rel string) string {
	if rel == "." {
		return ""
	}
	return strings.Join(strings.Split(filepath.ToSlash(rel), "/"), PackageSeparator)
}
