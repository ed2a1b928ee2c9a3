package errors

import (
	"errors"
	"fmt"
)

// ValidationError rejects one raw field input. The conversation stays in
// place and re-prompts; nothing is stored.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("поле %q: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// GenerationError wraps a failed document render. The accumulated record is
// kept so the user can /retry.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

func NewGenerationError(message string, cause error) *GenerationError {
	return &GenerationError{
		Message: message,
		Cause:   cause,
	}
}

func IsGenerationError(err error) (*GenerationError, bool) {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// ConfigError is fatal: unknown company key or a missing static asset.
// It should prevent startup rather than surface per-request.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

func NewConfigError(message string) *ConfigError {
	return &ConfigError{Message: message}
}

func IsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
