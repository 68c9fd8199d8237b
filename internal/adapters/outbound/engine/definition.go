package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Definition is one convention-definition document.
type Definition struct {
	Packages []PackageRule `yaml:"packages" toml:"packages"`
	Ignore   []string      `yaml:"ignore"   toml:"ignore"`
}

// PackageRule allows packages whose identifier matches Pattern. Files in such
// a package must satisfy one of Files; an empty Files list accepts any file.
type PackageRule struct {
	Pattern string     `yaml:"pattern" toml:"pattern"`
	Files   []FileRule `yaml:"files"   toml:"files"`
}

// FileRule constrains a file name by regular expression, naming style, or both.
type FileRule struct {
	Pattern string `yaml:"pattern,omitempty" toml:"pattern,omitempty"`
	Style   string `yaml:"style,omitempty"   toml:"style,omitempty"`
}

// LoadDefinition reads a definition document. Files ending in .toml are TOML,
// everything else (including extension-less files) is YAML.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition %s: %w", path, err)
	}

	var def Definition
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("parsing definition %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("parsing definition %s: %w", path, err)
		}
	}
	return &def, nil
}

var placeholderRe = regexp.MustCompile(`\$\{([^}]*)\}`)

// expand replaces ${name} with the regexp-quoted placeholder value.
func expand(pattern string, placeholders map[string]string) (string, error) {
	var missing string
	out := placeholderRe.ReplaceAllStringFunc(pattern, func(m string) string {
		name := placeholderRe.FindStringSubmatch(m)[1]
		v, ok := placeholders[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return m
		}
		return regexp.QuoteMeta(v)
	})
	if missing != "" {
		return "", fmt.Errorf("undefined placeholder %q", missing)
	}
	return out, nil
}

// compilePattern expands placeholders and anchors the pattern so that it must
// match the whole name.
func compilePattern(pattern string, placeholders map[string]string) (*regexp.Regexp, error) {
	expanded, err := expand(pattern, placeholders)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(`^(?:` + expanded + `)$`)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}
	return re, nil
}
