package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return "validation errors:\n  - " + strings.Join(msgs, "\n  - ")
}

// Validate checks the release configuration for errors.
func Validate(r *Release) error {
	var errs ValidationErrors

	if r.Manifest == "" {
		errs = append(errs, ValidationError{"manifest", "is required"})
	}
	if r.Branch == "" {
		errs = append(errs, ValidationError{"branch", "is required"})
	}
	if r.Message != "" && !strings.Contains(r.Message, "{version}") {
		errs = append(errs, ValidationError{"message", "must contain {version}"})
	}

	if r.Banner.Width < 0 {
		errs = append(errs, ValidationError{"banner.width", "must not be negative"})
	}
	if n := len(r.Banner.Palette); n == 1 {
		errs = append(errs, ValidationError{"banner.palette", "needs at least 2 colors"})
	}
	for i, hex := range r.Banner.Palette {
		if !strings.HasPrefix(hex, "#") {
			errs = append(errs, ValidationError{
				fmt.Sprintf("banner.palette[%d]", i),
				fmt.Sprintf("color %q must be #rrggbb", hex),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
