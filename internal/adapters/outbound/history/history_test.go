package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/history"
	"github.com/fnwatchdog/fnwatchdog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.RunEntry{
		Timestamp:  "2026-02-25T10:00:00Z",
		CommitHash: "abc1234",
		Gate:       domain.GateFail,
		Roots:      2,
		Findings:   3,
	}

	require.NoError(t, h.Save(dir, entry))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestHistory_AppendMultiple(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t1", Gate: domain.GateFail, Findings: 5}))
	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t2", Gate: domain.GateFail, Findings: 2}))
	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t3", Gate: domain.GatePass}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 5, entries[0].Findings)
	assert.Equal(t, domain.GatePass, entries[2].Gate)
}

func TestHistory_LoadEmpty(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	nestedDir := filepath.Join(dir, "deep", "nested")
	h := history.New()

	require.NoError(t, h.Save(nestedDir, domain.RunEntry{Timestamp: "t1", Gate: domain.GatePass}))

	entries, err := h.Load(nestedDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestHistory_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, ".fnwatchdog", "history", "runs.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
	require.NoError(t, os.WriteFile(fp, []byte("not json"), 0644))

	_, err := history.New().Load(dir)
	assert.Error(t, err)
}
