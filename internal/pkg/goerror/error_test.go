package goerror

import (
	"errors"
	"net/http"
	"testing"
)

func TestStatusCodeMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"conflict", NewBusiness("Email already registered", CodeConflict), http.StatusConflict},
		{"bad request", NewBusiness("Invalid or expired OTP", CodeBadRequest), http.StatusBadRequest},
		{"unauthorized", NewBusiness("Invalid credentials", CodeUnauthorized), http.StatusUnauthorized},
		{"too many", NewBusiness("Request already in progress", CodeTooManyRequest), http.StatusTooManyRequests},
		{"server", NewServer(errors.New("boom")), http.StatusInternalServerError},
		{"invalid format", NewInvalidFormat(), http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gerr *Error
			if !errors.As(tc.err, &gerr) {
				t.Fatalf("expected *Error, got %T", tc.err)
			}
			if got := gerr.StatusCode(); got != tc.want {
				t.Fatalf("status = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBusinessErrorMessage(t *testing.T) {
	err := NewBusiness("Invalid credentials", CodeUnauthorized)

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}

	if gerr.Msg() != "Invalid credentials" {
		t.Fatalf("msg = %q, want %q", gerr.Msg(), "Invalid credentials")
	}
	if gerr.Type() != TypeBusiness {
		t.Fatalf("type = %v, want business", gerr.Type())
	}
}
