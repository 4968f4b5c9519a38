package config

import (
	"errors"
	"fmt"
	"os"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for errors. It runs before any
// child is spawned; a failure here is fatal to the supervisor.
func Validate(cfg *Config) error {
	var errs []error

	if len(cfg.Command) == 0 {
		errs = append(errs, ValidationError{
			Field:   "command",
			Message: "a child command is required",
		})
	}

	if cfg.Chdir != "" {
		info, err := os.Stat(cfg.Chdir)
		switch {
		case err != nil:
			errs = append(errs, ValidationError{
				Field:   "chdir",
				Message: fmt.Sprintf("%q does not exist", cfg.Chdir),
			})
		case !info.IsDir():
			errs = append(errs, ValidationError{
				Field:   "chdir",
				Message: fmt.Sprintf("%q is not a directory", cfg.Chdir),
			})
		}
	}

	if cfg.Timeout < 0 {
		errs = append(errs, ValidationError{
			Field:   "timeout",
			Message: "must not be negative",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[cfg.LogFormat] {
		errs = append(errs, ValidationError{
			Field:   "log_format",
			Message: fmt.Sprintf("must be 'json' or 'text' (got %q)", cfg.LogFormat),
		})
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
