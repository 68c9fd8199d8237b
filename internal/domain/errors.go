package domain

import (
	"errors"
	"fmt"
)

// ConfigErrorKind names the configuration mistake behind a ConfigError.
type ConfigErrorKind string

const (
	MissingDefinitionSources ConfigErrorKind = "missing_definition_sources"
	InvalidConfig            ConfigErrorKind = "invalid_config"
)

// ConfigError reports a caller configuration mistake. It aborts a run before
// any source root is scanned.
type ConfigError struct {
	Kind    ConfigErrorKind
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ExecutionError wraps a failure of the convention engine, raised either while
// building it (Root is empty) or while checking a root.
type ExecutionError struct {
	Root    string
	Message string
	Err     error
}

func (e *ExecutionError) Error() string {
	msg := e.Message
	if msg == "" {
		if e.Root != "" {
			msg = fmt.Sprintf("checking %s", e.Root)
		} else {
			msg = "creating convention engine"
		}
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// ErrPolicyFailure signals that violations were found and the configuration
// asks to fail. The violations themselves were already logged.
var ErrPolicyFailure = errors.New("naming convention violations found")
