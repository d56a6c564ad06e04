package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/Mohamedalijas/turfnation/internal/pkg/goerror"
)

// activeAccount registers and verifies an account, consuming code 111111.
func activeAccount(t *testing.T, f *fixture) SignupInput {
	t.Helper()

	in := signupAccount(t, f)
	if err := f.uc.VerifySignupOTP(context.Background(), VerifySignupOTPInput{Email: in.Email, Code: "111111"}); err != nil {
		t.Fatalf("VerifySignupOTP() error = %v", err)
	}
	return in
}

func TestLogin(t *testing.T) {
	t.Run("issues a fresh challenge and emails it", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		in := activeAccount(t, f)

		// Act
		err := f.uc.Login(context.Background(), LoginInput{Email: in.Email, Password: in.Password})

		// Assert
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		acc := f.store.get(t, in.Email)
		if acc.Challenge == nil || acc.Challenge.Code != "222222" {
			t.Fatalf("challenge = %+v, want code 222222", acc.Challenge)
		}

		mail := f.notifier.last(t)
		if mail.Subject != "Login OTP" {
			t.Errorf("mail subject = %q", mail.Subject)
		}
		if !strings.Contains(mail.Body, "222222") {
			t.Errorf("mail body %q does not carry the code", mail.Body)
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		f := newFixture(t)
		in := activeAccount(t, f)

		err := f.uc.Login(context.Background(), LoginInput{Email: in.Email, Password: "wrong-password"})

		assertBusinessError(t, err, "Invalid credentials", goerror.CodeUnauthorized)
	})

	t.Run("rejects an unknown email with the same error", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "whatever1"})

		assertBusinessError(t, err, "Invalid credentials", goerror.CodeUnauthorized)
	})

	t.Run("rejects an unverified account with the same error", func(t *testing.T) {
		f := newFixture(t)
		in := signupAccount(t, f)

		err := f.uc.Login(context.Background(), LoginInput{Email: in.Email, Password: in.Password})

		assertBusinessError(t, err, "Invalid credentials", goerror.CodeUnauthorized)
	})

	t.Run("does not touch the stored challenge on a failed attempt", func(t *testing.T) {
		f := newFixture(t)
		in := activeAccount(t, f)

		_ = f.uc.Login(context.Background(), LoginInput{Email: in.Email, Password: "wrong-password"})

		acc := f.store.get(t, in.Email)
		if acc.Challenge != nil {
			t.Errorf("challenge = %+v, want none", acc.Challenge)
		}
	})

	t.Run("reports a concurrent login for the same email", func(t *testing.T) {
		f := newFixture(t)
		in := activeAccount(t, f)
		f.uc.guard = busyGuard{}

		err := f.uc.Login(context.Background(), LoginInput{Email: in.Email, Password: in.Password})

		assertBusinessError(t, err, "Request already in progress", goerror.CodeTooManyRequest)
	})
}
