package application

import (
	"path/filepath"

	"github.com/fnwatchdog/fnwatchdog/internal/domain"
)

// Reporter turns run events and findings into log entries.
type Reporter struct {
	log domain.Logger
	tr  domain.Translator
}

func NewReporter(log domain.Logger, tr domain.Translator) *Reporter {
	return &Reporter{log: log, tr: tr}
}

// ReportRoots logs every resolved source root with its absolute path. It only
// emits when debug output is enabled.
func (r *Reporter) ReportRoots(roots []string) {
	if !r.log.DebugEnabled() {
		return
	}
	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			abs = root
		}
		r.log.Debug(r.tr.Translate(domain.BundleLog, domain.MsgFoundRoot, abs), "root", abs)
	}
}

// ReportNoRoots warns that there was nothing to scan.
func (r *Reporter) ReportNoRoots() {
	r.log.Warn(r.tr.Translate(domain.BundleLog, domain.MsgNoSourceRoots))
}

// ReportFindings logs one entry per finding: a package entry for a package
// that violates the conventions itself, a file entry for each non-compliant
// file of an otherwise compliant package.
func (r *Reporter) ReportFindings(findings []domain.Finding) {
	for _, f := range findings {
		switch f.Kind {
		case domain.FindingPackage:
			r.log.Error(r.tr.Translate(domain.BundleLog, domain.MsgNoncompliantPackage, f.Package),
				"package", f.Package, "root", f.Root)
		case domain.FindingFile:
			r.log.Error(r.tr.Translate(domain.BundleLog, domain.MsgNoncompliantFile, f.File, f.Package),
				"file", f.File, "package", f.Package, "root", f.Root)
		}
	}
}
