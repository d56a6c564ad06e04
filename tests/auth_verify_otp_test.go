package tests

import (
	"net/http"
	"testing"
)

func TestVerifyOTPUnknownAccount(t *testing.T) {
	// Arrange
	payload := map[string]string{
		"email": uniqueEmail("real-verify"),
		"code":  "123456",
	}

	// Act
	status, body := doJSON(t, http.MethodPost, "/api/users/verify-otp", payload, "")

	// Assert
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", status, http.StatusBadRequest)
	}
	errEnv := decodeError(t, body)
	if errEnv.Message != "Invalid or expired OTP" {
		t.Fatalf("message = %q", errEnv.Message)
	}
}

func TestVerifyOTPWrongCode(t *testing.T) {
	// Arrange
	email := uniqueEmail("real-verify-wrong")
	signup(t, email)

	// The real code went out by email; any fixed guess must be rejected the
	// same way as an expired or missing one.
	payload := map[string]string{"email": email, "code": "000000"}

	// Act
	status, body := doJSON(t, http.MethodPost, "/api/users/verify-otp", payload, "")

	// Assert
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", status, http.StatusBadRequest)
	}
	errEnv := decodeError(t, body)
	if errEnv.Message != "Invalid or expired OTP" {
		t.Fatalf("message = %q", errEnv.Message)
	}
}
