package domain

import (
	"encoding/json"
	"sort"
)

// FileSet is a set of file names within one package.
type FileSet map[string]struct{}

// NewFileSet returns a FileSet holding names. With no names it is the empty
// set that marks a package-level violation.
func NewFileSet(names ...string) FileSet {
	s := make(FileSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s FileSet) Add(name string) { s[name] = struct{}{} }

func (s FileSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the file names in lexical order.
func (s FileSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func (s FileSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *FileSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*s = NewFileSet(names...)
	return nil
}

// ViolationReport maps a package identifier to the non-compliant file names in
// it. A package mapped to an empty FileSet violates the conventions itself.
type ViolationReport map[string]FileSet

// Packages returns the package identifiers in lexical order.
func (r ViolationReport) Packages() []string {
	out := make([]string, 0, len(r))
	for p := range r {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// RootReport is the engine's verdict for one scanned source root.
type RootReport struct {
	Root       string          `json:"root"`
	Violations ViolationReport `json:"violations"`
}

// FindingKind distinguishes a non-compliant package from a non-compliant file.
type FindingKind string

const (
	FindingPackage FindingKind = "package"
	FindingFile    FindingKind = "file"
)

// Finding is one reportable convention violation.
type Finding struct {
	Kind    FindingKind `json:"kind"`
	Root    string      `json:"root"`
	Package string      `json:"package"`
	File    string      `json:"file,omitempty"`
}

// AggregatedResult is the union of all root reports of one run.
type AggregatedResult struct {
	Reports       []RootReport `json:"reports"`
	HasViolations bool         `json:"has_violations"`
}

// Findings flattens the reports into findings: reports in their original
// order, packages and files sorted. Each finding appears exactly once.
func (a AggregatedResult) Findings() []Finding {
	out := []Finding{}
	for _, r := range a.Reports {
		for _, pkg := range r.Violations.Packages() {
			files := r.Violations[pkg]
			if len(files) == 0 {
				out = append(out, Finding{Kind: FindingPackage, Root: r.Root, Package: pkg})
				continue
			}
			for _, f := range files.Sorted() {
				out = append(out, Finding{Kind: FindingFile, Root: r.Root, Package: pkg, File: f})
			}
		}
	}
	return out
}

// ExecutionPlan is the validated input of one compliance run.
type ExecutionPlan struct {
	DefinitionSources []string          `json:"definition_sources"`
	Placeholders      map[string]string `json:"placeholders"`
	ScanRoots         []string          `json:"scan_roots"`
	FailOnViolation   bool              `json:"fail_on_violation"`
	Parallelism       int               `json:"parallelism"`
}

// GateResult is the terminal pass/fail decision of a run.
type GateResult string

const (
	GatePass GateResult = "pass"
	GateFail GateResult = "fail"
)

// RunResult is everything a run produced, handed to inbound adapters.
type RunResult struct {
	Plan       ExecutionPlan    `json:"plan"`
	Result     AggregatedResult `json:"result"`
	Findings   []Finding        `json:"findings"`
	Gate       GateResult       `json:"gate"`
	CommitHash string           `json:"commit_hash,omitempty"`
}

// RunEntry is the condensed record of one run kept in the project history.
type RunEntry struct {
	Timestamp  string     `json:"timestamp"`
	CommitHash string     `json:"commit_hash,omitempty"`
	Gate       GateResult `json:"gate"`
	Roots      int        `json:"roots"`
	Findings   int        `json:"findings"`
}

// Entry condenses the result into a history entry stamped with timestamp.
func (r *RunResult) Entry(timestamp string) RunEntry {
	return RunEntry{
		Timestamp:  timestamp,
		CommitHash: r.CommitHash,
		Gate:       r.Gate,
		Roots:      len(r.Result.Reports),
		Findings:   len(r.Findings),
	}
}
