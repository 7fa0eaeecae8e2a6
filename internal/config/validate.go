package config

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
)

// ValidationError contains details about what failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config.%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// validateConfig checks all config values for validity.
// Returns nil if valid, or joined errors for all validation failures.
func validateConfig(cfg *Config) error {
	var errs []error

	// Each service address must be a parseable host:port
	addrs := []struct {
		field string
		value string
	}{
		{"job_addr", cfg.JobAddr},
		{"toolchain_addr", cfg.ToolchainAddr},
		{"project_addr", cfg.ProjectAddr},
		{"build_addr", cfg.BuildAddr},
		{"targets_addr", cfg.TargetsAddr},
		{"observe_addr", cfg.ObserveAddr},
		{"workflow_addr", cfg.WorkflowAddr},
	}
	for _, a := range addrs {
		if _, _, err := net.SplitHostPort(a.value); err != nil {
			errs = append(errs, &ValidationError{
				Field:   a.field,
				Value:   a.value,
				Message: fmt.Sprintf("invalid address: %v", err),
			})
		}
	}

	// DataDir must be absolute
	if !filepath.IsAbs(cfg.DataDir) {
		errs = append(errs, &ValidationError{
			Field:   "data_dir",
			Value:   cfg.DataDir,
			Message: "must be absolute",
		})
	}

	// LogLevel must be one of: debug, info, warn, error
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		errs = append(errs, &ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: "must be one of: debug, info, warn, error",
		})
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
