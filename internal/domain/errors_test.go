package domain_test

import (
	"errors"
	"testing"

	"github.com/fnwatchdog/fnwatchdog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestConfigError_FallsBackToKind(t *testing.T) {
	err := &domain.ConfigError{Kind: domain.MissingDefinitionSources}
	assert.Equal(t, "missing_definition_sources", err.Error())
}

func TestConfigError_UsesMessageAndCause(t *testing.T) {
	cause := errors.New("boom")
	err := &domain.ConfigError{Kind: domain.InvalidConfig, Message: "bad config", Err: cause}
	assert.Equal(t, "bad config: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestExecutionError_WrapsEngineFault(t *testing.T) {
	cause := errors.New("malformed definition")
	err := &domain.ExecutionError{Root: "/src", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/src")
	assert.Contains(t, err.Error(), "malformed definition")

	var execErr *domain.ExecutionError
	assert.True(t, errors.As(error(err), &execErr))
}

func TestExecutionError_ConstructionFault(t *testing.T) {
	err := &domain.ExecutionError{Err: errors.New("x")}
	assert.Contains(t, err.Error(), "creating convention engine")
}

func TestErrPolicyFailure_IsDistinct(t *testing.T) {
	var cfgErr *domain.ConfigError
	var execErr *domain.ExecutionError
	assert.False(t, errors.As(domain.ErrPolicyFailure, &cfgErr))
	assert.False(t, errors.As(domain.ErrPolicyFailure, &execErr))
}
