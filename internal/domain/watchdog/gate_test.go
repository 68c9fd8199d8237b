package watchdog_test

import (
	"testing"

	"github.com/fnwatchdog/fnwatchdog/internal/domain"
	"github.com/fnwatchdog/fnwatchdog/internal/domain/watchdog"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name            string
		hasViolations   bool
		failOnViolation bool
		want            domain.GateResult
	}{
		{"violations and fail", true, true, domain.GateFail},
		{"violations but report only", true, false, domain.GatePass},
		{"clean and fail", false, true, domain.GatePass},
		{"clean and report only", false, false, domain.GatePass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, watchdog.Decide(tt.hasViolations, tt.failOnViolation))
		})
	}
}
