package jwt

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

type staticUUID struct{ v string }

func (u staticUUID) Generate() string { return u.v }

func testSecret() []byte {
	return bytes.Repeat([]byte("s"), 64)
}

func TestNewHS512ShortSecret(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("short")})
	if !errors.Is(err, ErrSigningKeyTooShort) {
		t.Fatalf("err = %v, want ErrSigningKeyTooShort", err)
	}
}

func TestGenerateVerifyRoundTrip(t *testing.T) {
	signer, err := NewHS512(Config{
		Secret:     testSecret(),
		Issuer:     "turfnation",
		Audiences:  []string{"turfnation-api"},
		TTLMinutes: 15 * time.Minute,
		Clock:      fixedClock{at: time.Now()},
		UUID:       staticUUID{v: "token-id"},
	})
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}

	token, err := signer.Generate("68b1c2", "Alice", "alice@example.com", "player")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if claims.Subject != "68b1c2" {
		t.Fatalf("subject = %q, want %q", claims.Subject, "68b1c2")
	}
	if claims.Name != "Alice" {
		t.Fatalf("name = %q, want %q", claims.Name, "Alice")
	}
	if claims.UserEmail != "alice@example.com" {
		t.Fatalf("user_email = %q, want %q", claims.UserEmail, "alice@example.com")
	}
	if claims.Role != "player" {
		t.Fatalf("role = %q, want %q", claims.Role, "player")
	}
}

func TestVerifyExpired(t *testing.T) {
	signer, err := NewHS512(Config{
		Secret:     testSecret(),
		Issuer:     "turfnation",
		Audiences:  []string{"turfnation-api"},
		TTLMinutes: time.Minute,
		Clock:      fixedClock{at: time.Now().Add(-time.Hour)},
		UUID:       staticUUID{v: "token-id"},
	})
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}

	token, err := signer.Generate("68b1c2", "Alice", "alice@example.com", "player")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := signer.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}
