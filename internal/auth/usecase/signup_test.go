package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Mohamedalijas/turfnation/internal/auth/entity"
	"github.com/Mohamedalijas/turfnation/internal/pkg/goerror"
)

func TestSignup(t *testing.T) {
	t.Run("creates a pending account and emails the code", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		in := validSignup()

		// Act
		err := f.uc.Signup(context.Background(), in)

		// Assert
		if err != nil {
			t.Fatalf("Signup() error = %v", err)
		}

		acc := f.store.get(t, in.Email)
		if acc.Status != entity.AccountStatusPending {
			t.Errorf("status = %q, want %q", acc.Status, entity.AccountStatusPending)
		}
		if acc.ID == "" {
			t.Error("account id is empty")
		}
		if acc.PasswordHash == in.Password {
			t.Error("password was stored without hashing")
		}
		if acc.Challenge == nil || acc.Challenge.Code != "111111" {
			t.Fatalf("challenge = %+v, want code 111111", acc.Challenge)
		}
		wantExpiry := f.clock.Now().Add(time.Minute)
		if !acc.Challenge.ExpiresAt.Equal(wantExpiry) {
			t.Errorf("challenge expiry = %v, want %v", acc.Challenge.ExpiresAt, wantExpiry)
		}

		mail := f.notifier.last(t)
		if mail.To != in.Email {
			t.Errorf("mail recipient = %q, want %q", mail.To, in.Email)
		}
		if mail.Subject != "OTP Verification" {
			t.Errorf("mail subject = %q", mail.Subject)
		}
		if !strings.Contains(mail.Body, "111111") {
			t.Errorf("mail body %q does not carry the code", mail.Body)
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		f := newFixture(t)
		if err := f.uc.Signup(context.Background(), validSignup()); err != nil {
			t.Fatalf("first Signup() error = %v", err)
		}

		err := f.uc.Signup(context.Background(), validSignup())

		assertBusinessError(t, err, "Email already registered", goerror.CodeConflict)
		if n := len(f.store.accounts); n != 1 {
			t.Errorf("store holds %d accounts, want 1", n)
		}
	})

	t.Run("rejects a duplicate even when the account is already active", func(t *testing.T) {
		f := newFixture(t)
		in := validSignup()
		if err := f.uc.Signup(context.Background(), in); err != nil {
			t.Fatalf("Signup() error = %v", err)
		}
		verify := VerifySignupOTPInput{Email: in.Email, Code: "111111"}
		if err := f.uc.VerifySignupOTP(context.Background(), verify); err != nil {
			t.Fatalf("VerifySignupOTP() error = %v", err)
		}

		err := f.uc.Signup(context.Background(), in)

		assertBusinessError(t, err, "Email already registered", goerror.CodeConflict)
	})

	t.Run("rejects invalid input before touching collaborators", func(t *testing.T) {
		f := newFixture(t)
		in := validSignup()
		in.Email = "not-an-email"

		err := f.uc.Signup(context.Background(), in)

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Type() != goerror.TypeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(f.notifier.sent) != 0 {
			t.Error("mail was sent for an invalid request")
		}
	})

	t.Run("fails with a server error when the email cannot be delivered", func(t *testing.T) {
		f := newFixture(t)
		f.notifier.fail = errors.New("smtp connection refused")
		in := validSignup()

		err := f.uc.Signup(context.Background(), in)

		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Type() != goerror.TypeServer {
			t.Fatalf("expected server error, got %v", err)
		}
		// The account exists but stays pending, so the flow can be retried
		// through verification once delivery recovers.
		acc := f.store.get(t, in.Email)
		if acc.Status != entity.AccountStatusPending {
			t.Errorf("status = %q, want %q", acc.Status, entity.AccountStatusPending)
		}
	})

	t.Run("reports a concurrent signup for the same email", func(t *testing.T) {
		f := newFixture(t)
		f.uc.guard = busyGuard{}

		err := f.uc.Signup(context.Background(), validSignup())

		assertBusinessError(t, err, "Request already in progress", goerror.CodeTooManyRequest)
	})
}
