package domain

// ConventionEngine checks a source tree against a parsed rule set.
// Implementations must be safe for concurrent Check calls.
type ConventionEngine interface {
	Check(root string) (ViolationReport, error)
}

// EngineFactory builds a ConventionEngine from definition sources and
// placeholder values.
type EngineFactory func(sources []string, placeholders map[string]string) (ConventionEngine, error)

// SourceRootProvider discovers the conventional source roots of a project's
// source set when none were configured.
type SourceRootProvider interface {
	DefaultRoots(projectPath, sourceSet string) []string
}

// Translator looks up a message in a bundle and formats it with args. Unknown
// bundles and keys yield the key itself.
type Translator interface {
	Translate(bundle, key string, args ...any) string
}

// Logger is the structured, leveled log sink used for run diagnostics and
// violation entries.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
	DebugEnabled() bool
}

// ConfigLoader loads project-level configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// GitInfo provides git metadata for a project directory.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// RunHistory persists one entry per recorded run.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}
