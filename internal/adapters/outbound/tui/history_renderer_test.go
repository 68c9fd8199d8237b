package tui_test

import (
	"testing"

	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/tui"
	"github.com/fnwatchdog/fnwatchdog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderHistory_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderHistory(nil), "No run history found.")
}

func TestRenderHistory_Trend(t *testing.T) {
	output := tui.RenderHistory([]domain.RunEntry{
		{Timestamp: "2026-02-25T10:00:00Z", CommitHash: "abcdef0123", Gate: domain.GateFail, Findings: 5},
		{Timestamp: "2026-02-26T10:00:00Z", Gate: domain.GateFail, Findings: 2},
		{Timestamp: "2026-02-27T10:00:00Z", Gate: domain.GatePass, Findings: 4},
	})
	assert.Contains(t, output, "Run History")
	assert.Contains(t, output, "2026-02-25")
	assert.Contains(t, output, "abcdef0")
	assert.Contains(t, output, "↓3")
	assert.Contains(t, output, "↑2")
	assert.Contains(t, output, "PASS")
}
