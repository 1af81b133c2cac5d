package model

import (
	"errors"
	"fmt"
)

// ErrHalt is returned by an action after which nothing else may run.
var ErrHalt = errors.New("execution halted")

// ParseError reports a command-line token that is not a known flag.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Unknown argument \"%s\".", e.Token)
}

// ConfigurationError reports a referenced environment variable that is not set.
type ConfigurationError struct {
	Name string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("EnvVar '%s' is not set.", e.Name)
}

// ValidationError reports a flag parameter that is malformed or out of range.
type ValidationError struct {
	Flag   string
	Value  string
	Reason string
	Err    error // underlying cause, if any
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Flag)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
