package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"exam-platform-backend/internal/services"

	"github.com/go-playground/validator/v10"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{services.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("loading result: %w", services.ErrNotFound), http.StatusNotFound},
		{services.ErrInvalidInput, http.StatusBadRequest},
		{services.ErrEmailTaken, http.StatusBadRequest},
		{services.ErrRegNumberTaken, http.StatusBadRequest},
		{services.ErrDeadlineExceeded, http.StatusBadRequest},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		if got := statusFromError(tc.err); got != tc.want {
			t.Errorf("statusFromError(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestRegNumberValidation(t *testing.T) {
	v := validator.New()
	if err := v.RegisterValidation("regnumber", RegNumber); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		value string
		valid bool
	}{
		{"REG-2024-001", true},
		{"abc123", true},
		{"A1B2", true},
		{"ab", false},
		{"", false},
		{"has spaces no", false},
		{"way-too-long-registration-number-over-32", false},
	}

	for _, tc := range tests {
		err := v.Var(tc.value, "regnumber")
		if tc.valid && err != nil {
			t.Errorf("%q should be valid: %v", tc.value, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("%q should be rejected", tc.value)
		}
	}
}
