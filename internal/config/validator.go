package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its constraints and reports all
// violations at once
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s' (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// Warnings returns non-fatal observations about a valid configuration
func Warnings(cfg *Config) []string {
	var warnings []string

	if cfg.Environment == "prod" && cfg.LogFormat != "json" {
		warnings = append(warnings, "LOG_FORMAT is not json in prod - log aggregation expects structured output")
	}
	if cfg.HTTPPort == 0 {
		warnings = append(warnings, "HTTP_PORT is 0 - the recipe catalogue and /metrics are disabled")
	}
	m := cfg.Materials
	if m.IronIngot == m.BronzeIngot {
		warnings = append(warnings, "iron_ingot and bronze_ingot share a vnum - salvage cannot tell them apart")
	}
	return warnings
}
