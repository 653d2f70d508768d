package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code int
	}{
		{"Not found", NewNotFoundError("run not found", nil), http.StatusNotFound},
		{"Validation", NewValidationError("bad input", nil), http.StatusBadRequest},
		{"Unprocessable", NewUnprocessableError("export rejected", nil), http.StatusUnprocessableEntity},
		{"Internal", NewInternalError("boom", errors.New("cause")), http.StatusInternalServerError},
		{"Conflict", NewConflictError("duplicate", nil), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode() != tt.code {
				t.Errorf("StatusCode() = %d, want %d", tt.err.StatusCode(), tt.code)
			}
		})
	}
}

func TestInternalErrorHidesDetails(t *testing.T) {
	err := NewInternalError("database exploded", errors.New("disk full"))
	if err.UserMessage() != "internal server error" {
		t.Errorf("UserMessage() = %q, want generic message", err.UserMessage())
	}
}

func TestWrapErrorPreservesAppError(t *testing.T) {
	original := NewNotFoundError("upload not found", nil)
	wrapped := WrapError(original, "request failed")
	if wrapped.StatusCode() != http.StatusNotFound {
		t.Errorf("StatusCode() = %d, want 404", wrapped.StatusCode())
	}

	plain := WrapError(errors.New("boom"), "request failed")
	if plain.StatusCode() != http.StatusInternalServerError {
		t.Errorf("StatusCode() = %d, want 500", plain.StatusCode())
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := NewUnprocessableError("rejected", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is does not reach the wrapped cause")
	}
}
