package sourceset

import (
	"os"
	"path/filepath"
	"sort"
)

// resourceDirs hold non-source files of a source set and are never scanned.
var resourceDirs = map[string]bool{
	"resources": true,
}

// Provider implements domain.SourceRootProvider for the src/<set>/<language>
// project layout.
type Provider struct{}

func New() *Provider {
	return &Provider{}
}

// DefaultRoots returns the language directories of src/<sourceSet> below
// projectPath, without resource directories, sorted by name. It returns nil
// when the source set directory does not exist.
func (p *Provider) DefaultRoots(projectPath, sourceSet string) []string {
	setDir := filepath.Join(projectPath, "src", sourceSet)
	entries, err := os.ReadDir(setDir)
	if err != nil {
		return nil
	}

	var roots []string
	for _, e := range entries {
		if !e.IsDir() || resourceDirs[e.Name()] {
			continue
		}
		roots = append(roots, filepath.Join(setDir, e.Name()))
	}
	sort.Strings(roots)
	return roots
}
