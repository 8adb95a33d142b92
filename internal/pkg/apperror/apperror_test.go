package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("start must be before end"), http.StatusBadRequest},
		{"not found", NotFound("unknown appliance"), http.StatusNotFound},
		{"conflict", Conflict("slot already reserved"), http.StatusConflict},
		{"authentication", Authentication("access denied"), http.StatusUnauthorized},
		{"upstream signal", UpstreamSignal("no face detected", nil), http.StatusUnprocessableEntity},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("booking: %w", Conflict("slot already reserved")), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("outer: %w", Authentication("access denied"))

	if !IsKind(err, KindAuthentication) {
		t.Errorf("IsKind() = false for wrapped authentication error")
	}
	if IsKind(err, KindConflict) {
		t.Errorf("IsKind() matched the wrong kind")
	}
	if IsKind(errors.New("plain"), KindValidation) {
		t.Errorf("IsKind() matched a plain error")
	}
}
