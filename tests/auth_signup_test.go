package tests

import (
	"net/http"
	"testing"
)

func TestSignup(t *testing.T) {
	// Arrange
	email := uniqueEmail("real-signup")

	// Act
	status, body := doJSON(t, http.MethodPost, "/api/users/signup", signupPayload(email), "")

	// Assert
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("signup failed: status=%d message=%q", status, errEnv.Message)
	}
	env := decodeSuccess(t, body, nil)
	if env.Message != "OTP sent to registered email for verification" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	// Arrange
	email := uniqueEmail("real-signup-dup")
	signup(t, email)

	// Act
	status, body := doJSON(t, http.MethodPost, "/api/users/signup", signupPayload(email), "")

	// Assert
	if status != http.StatusConflict {
		t.Fatalf("status = %d, want %d", status, http.StatusConflict)
	}
	errEnv := decodeError(t, body)
	if errEnv.Message != "Email already registered" {
		t.Fatalf("message = %q", errEnv.Message)
	}
}

func TestSignupInvalidPayload(t *testing.T) {
	// Arrange
	payload := signupPayload("not-an-email")

	// Act
	status, _ := doJSON(t, http.MethodPost, "/api/users/signup", payload, "")

	// Assert
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", status, http.StatusUnprocessableEntity)
	}
}
