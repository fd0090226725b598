package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	if got := KindOf(NotFound("session not found")); got != KindNotFound {
		t.Errorf("KindOf(NotFound) = %s", got)
	}
	if got := KindOf(errors.New("plain")); got != KindInternal {
		t.Errorf("KindOf(plain error) = %s, want %s", got, KindInternal)
	}

	wrapped := fmt.Errorf("submitting answer: %w", Conflict("answer already submitted"))
	if got := KindOf(wrapped); got != KindConflict {
		t.Errorf("KindOf(wrapped conflict) = %s, want %s", got, KindConflict)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NotFound("x"), http.StatusNotFound},
		{InvalidInput("x"), http.StatusBadRequest},
		{InvalidState("x"), http.StatusConflict},
		{Conflict("x"), http.StatusConflict},
		{Exhausted("x"), http.StatusConflict},
		{Internal("x", errors.New("db down")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestErrorsIsMatchesByKind(t *testing.T) {
	err := Conflict("display name already taken")
	if !errors.Is(err, Conflict("anything")) {
		t.Error("errors.Is should match two conflicts")
	}
	if errors.Is(err, NotFound("anything")) {
		t.Error("errors.Is should not match across kinds")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal("loading session", cause)
	if !errors.Is(err, cause) {
		t.Error("Internal should wrap its cause")
	}
}
