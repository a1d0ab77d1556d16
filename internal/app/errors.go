package app

import "fmt"

// ErrProbe represents a failed environment probe.
type ErrProbe struct {
	Environment string
	Cause       error
}

func (e *ErrProbe) Error() string {
	return fmt.Sprintf("probe %s: %v", e.Environment, e.Cause)
}

func (e *ErrProbe) Unwrap() error {
	return e.Cause
}

// ErrRegistry represents an environment registry error.
type ErrRegistry struct {
	Cause error
}

func (e *ErrRegistry) Error() string {
	return fmt.Sprintf("registry error: %v", e.Cause)
}

func (e *ErrRegistry) Unwrap() error {
	return e.Cause
}

// ErrConfig represents a configuration error.
type ErrConfig struct {
	Cause error
}

func (e *ErrConfig) Error() string {
	return fmt.Sprintf("config error: %v", e.Cause)
}

func (e *ErrConfig) Unwrap() error {
	return e.Cause
}
