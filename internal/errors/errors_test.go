package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("quantity", "значение должно быть не меньше 1")

	ve, ok := IsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if ve.Field != "quantity" {
		t.Errorf("expected field quantity, got %s", ve.Field)
	}

	if _, ok := IsGenerationError(err); ok {
		t.Errorf("ValidationError must not match GenerationError")
	}
}

func TestGenerationError_Unwrap(t *testing.T) {
	cause := errors.New("asset missing")
	err := NewGenerationError("формирование документа", cause)

	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause to be reachable")
	}

	wrapped := fmt.Errorf("handling: %w", err)
	if _, ok := IsGenerationError(wrapped); !ok {
		t.Errorf("expected GenerationError through wrapping")
	}
}

func TestGenerationError_NoCause(t *testing.T) {
	err := NewGenerationError("формирование документа", nil)
	if err.Error() != "формирование документа" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("неизвестная компания")
	if _, ok := IsConfigError(err); !ok {
		t.Fatalf("expected ConfigError, got %T", err)
	}
	if _, ok := IsValidationError(err); ok {
		t.Errorf("ConfigError must not match ValidationError")
	}
}
