package config

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMissingValue = errors.New("required value is missing or empty")
	ErrInvalidHex   = errors.New("value is not valid hexadecimal")
)

// ConfigurationError reports a missing or malformed configuration value.
type ConfigurationError struct {
	Key   string
	Value string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("configuration error: %s: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("configuration error: %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
