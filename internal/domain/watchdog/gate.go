package watchdog

import "github.com/fnwatchdog/fnwatchdog/internal/domain"

// Decide fails only when violations were found and the run is configured to
// fail on them.
func Decide(hasViolations, failOnViolation bool) domain.GateResult {
	if hasViolations && failOnViolation {
		return domain.GateFail
	}
	return domain.GatePass
}
