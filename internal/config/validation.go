package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a single configuration validation error.
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

	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for errors and returns all validation
// errors found.
func (c *Config) Validate() error {
	var errs ValidationErrors

	errs = append(errs, c.validateBM25()...)
	errs = append(errs, c.validateTopK()...)
	if c.Postgres.Enabled {
		errs = append(errs, c.validatePostgres()...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateBM25 validates the BM25 tuning constants.
func (c *Config) validateBM25() ValidationErrors {
	var errs ValidationErrors

	if c.BM25.K1 < 0 {
		errs = append(errs, ValidationError{
			Field:   "bm25.k1",
			Message: "must be non-negative",
		})
	}
	if c.BM25.B < 0 || c.BM25.B > 1 {
		errs = append(errs, ValidationError{
			Field:   "bm25.b",
			Message: "must be between 0 and 1",
		})
	}

	return errs
}

// validateTopK validates the result-set size.
func (c *Config) validateTopK() ValidationErrors {
	var errs ValidationErrors

	if c.TopK < 1 {
		errs = append(errs, ValidationError{
			Field:   "top_k",
			Message: "must be at least 1",
		})
	}

	return errs
}

// validatePostgres validates the optional Postgres corpus source, only
// when it is enabled.
func (c *Config) validatePostgres() ValidationErrors {
	var errs ValidationErrors

	if c.Postgres.Host == "" {
		errs = append(errs, ValidationError{Field: "postgres.host", Message: "required"})
	}
	if c.Postgres.Database == "" {
		errs = append(errs, ValidationError{Field: "postgres.database", Message: "required"})
	}
	if c.Postgres.Port < 1 || c.Postgres.Port > 65535 {
		errs = append(errs, ValidationError{Field: "postgres.port", Message: "must be between 1 and 65535"})
	}
	if c.Postgres.Table == "" {
		errs = append(errs, ValidationError{Field: "postgres.table", Message: "required"})
	}
	if c.Postgres.IDColumn == "" {
		errs = append(errs, ValidationError{Field: "postgres.id_column", Message: "required"})
	}
	if c.Postgres.TextColumn == "" {
		errs = append(errs, ValidationError{Field: "postgres.text_column", Message: "required"})
	}

	validSSLModes := map[string]bool{
		"disable": true, "allow": true, "prefer": true,
		"require": true, "verify-ca": true, "verify-full": true,
	}
	if c.Postgres.SSLMode != "" && !validSSLModes[c.Postgres.SSLMode] {
		errs = append(errs, ValidationError{
			Field:   "postgres.ssl_mode",
			Message: "must be one of: disable, allow, prefer, require, verify-ca, verify-full",
		})
	}

	return errs
}
