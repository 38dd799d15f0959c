package track

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration  = errors.New("track: invalid configuration")
	ErrMissingContent = errors.New("track: missing content handle")
	ErrInvalidSample  = errors.New("track: invalid position sample")
)

// ConfigurationError rejects a catalog at apply time. It matches
// ErrConfiguration with errors.Is.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "track: invalid configuration: " + e.Reason
	}
	return fmt.Sprintf("track: invalid configuration: %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configError(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
