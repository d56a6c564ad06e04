package tests

import (
	"net/http"
	"testing"
)

func TestLoginUnknownAccount(t *testing.T) {
	// Arrange
	payload := map[string]string{
		"email":    uniqueEmail("real-login"),
		"password": signupPassword,
	}

	// Act
	status, body := doJSON(t, http.MethodPost, "/api/users/login", payload, "")

	// Assert
	if status != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", status, http.StatusUnauthorized)
	}
	errEnv := decodeError(t, body)
	if errEnv.Message != "Invalid credentials" {
		t.Fatalf("message = %q", errEnv.Message)
	}
}

func TestLoginUnverifiedAccount(t *testing.T) {
	// Arrange
	email := uniqueEmail("real-login-pending")
	signup(t, email)

	payload := map[string]string{"email": email, "password": signupPassword}

	// Act
	status, body := doJSON(t, http.MethodPost, "/api/users/login", payload, "")

	// Assert: a pending account must be indistinguishable from bad credentials.
	if status != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", status, http.StatusUnauthorized)
	}
	errEnv := decodeError(t, body)
	if errEnv.Message != "Invalid credentials" {
		t.Fatalf("message = %q", errEnv.Message)
	}
}

func TestLoginVerifyWithoutChallenge(t *testing.T) {
	// Arrange
	payload := map[string]string{
		"email": uniqueEmail("real-login-verify"),
		"code":  "123456",
	}

	// Act
	status, body := doJSON(t, http.MethodPost, "/api/users/login/verify-otp", payload, "")

	// Assert
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", status, http.StatusBadRequest)
	}
	errEnv := decodeError(t, body)
	if errEnv.Message != "Invalid or expired OTP" {
		t.Fatalf("message = %q", errEnv.Message)
	}
}
