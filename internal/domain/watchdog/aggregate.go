package watchdog

import "github.com/fnwatchdog/fnwatchdog/internal/domain"

// Aggregate unions the per-root reports of a run. Reports are kept as they
// are; the same package key in two roots stays two separate entries.
func Aggregate(reports []domain.RootReport) domain.AggregatedResult {
	result := domain.AggregatedResult{Reports: reports}
	for _, r := range reports {
		if len(r.Violations) > 0 {
			result.HasViolations = true
			break
		}
	}
	if result.Reports == nil {
		result.Reports = []domain.RootReport{}
	}
	return result
}
