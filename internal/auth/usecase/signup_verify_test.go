package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Mohamedalijas/turfnation/internal/auth/entity"
	"github.com/Mohamedalijas/turfnation/internal/pkg/goerror"
)

func signupAccount(t *testing.T, f *fixture) SignupInput {
	t.Helper()

	in := validSignup()
	if err := f.uc.Signup(context.Background(), in); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	return in
}

func TestVerifySignupOTP(t *testing.T) {
	t.Run("activates the account and clears the challenge", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		in := signupAccount(t, f)

		// Act
		err := f.uc.VerifySignupOTP(context.Background(), VerifySignupOTPInput{Email: in.Email, Code: "111111"})

		// Assert
		if err != nil {
			t.Fatalf("VerifySignupOTP() error = %v", err)
		}
		acc := f.store.get(t, in.Email)
		if acc.Status != entity.AccountStatusActive {
			t.Errorf("status = %q, want %q", acc.Status, entity.AccountStatusActive)
		}
		if acc.Challenge != nil {
			t.Errorf("challenge = %+v, want cleared", acc.Challenge)
		}
	})

	t.Run("accepts the code at the exact expiry instant", func(t *testing.T) {
		f := newFixture(t)
		in := signupAccount(t, f)
		f.clock.advance(time.Minute)

		err := f.uc.VerifySignupOTP(context.Background(), VerifySignupOTPInput{Email: in.Email, Code: "111111"})

		if err != nil {
			t.Fatalf("VerifySignupOTP() error = %v", err)
		}
	})

	t.Run("rejects an expired code", func(t *testing.T) {
		f := newFixture(t)
		in := signupAccount(t, f)
		f.clock.advance(time.Minute + time.Second)

		err := f.uc.VerifySignupOTP(context.Background(), VerifySignupOTPInput{Email: in.Email, Code: "111111"})

		assertBusinessError(t, err, "Invalid or expired OTP", goerror.CodeBadRequest)
		if acc := f.store.get(t, in.Email); acc.Status != entity.AccountStatusPending {
			t.Errorf("status = %q, want %q", acc.Status, entity.AccountStatusPending)
		}
	})

	t.Run("rejects a wrong code", func(t *testing.T) {
		f := newFixture(t)
		in := signupAccount(t, f)

		err := f.uc.VerifySignupOTP(context.Background(), VerifySignupOTPInput{Email: in.Email, Code: "999999"})

		assertBusinessError(t, err, "Invalid or expired OTP", goerror.CodeBadRequest)
	})

	t.Run("rejects an unknown email with the same error", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.VerifySignupOTP(context.Background(), VerifySignupOTPInput{Email: "nobody@example.com", Code: "111111"})

		assertBusinessError(t, err, "Invalid or expired OTP", goerror.CodeBadRequest)
	})

	t.Run("rejects a second use of the same code", func(t *testing.T) {
		f := newFixture(t)
		in := signupAccount(t, f)
		verify := VerifySignupOTPInput{Email: in.Email, Code: "111111"}
		if err := f.uc.VerifySignupOTP(context.Background(), verify); err != nil {
			t.Fatalf("first VerifySignupOTP() error = %v", err)
		}

		err := f.uc.VerifySignupOTP(context.Background(), verify)

		assertBusinessError(t, err, "Invalid or expired OTP", goerror.CodeBadRequest)
	})
}
