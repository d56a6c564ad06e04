package tests

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

const signupPassword = "Secret123!"

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

func signupPayload(email string) map[string]string {
	return map[string]string{
		"name":      "Test Owner",
		"email":     email,
		"password":  signupPassword,
		"phone":     "+919876543210",
		"role":      "owner",
		"turf_name": "Green Arena",
		"location":  "Chennai",
	}
}

func signup(t *testing.T, email string) {
	t.Helper()

	status, body := doJSON(t, http.MethodPost, "/api/users/signup", signupPayload(email), "")
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("signup failed: status=%d message=%q", status, errEnv.Message)
	}
}
