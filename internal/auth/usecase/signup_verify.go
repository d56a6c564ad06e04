package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Mohamedalijas/turfnation/internal/auth/entity"
	"github.com/Mohamedalijas/turfnation/internal/pkg/goerror"
)

// VerifySignupOTPInput carries the account activation payload.
type VerifySignupOTPInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required"`
}

// VerifySignupOTP activates a pending account when the submitted code matches
// its live challenge. A missing account, a wrong or expired code, and an
// already-active account are indistinguishable to the caller.
func (s *Usecase) VerifySignupOTP(ctx context.Context, in VerifySignupOTPInput) error {
	ctx, span := s.startSpan(ctx, "VerifySignupOTP")
	defer span.End()

	in.Email = strings.TrimSpace(in.Email)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	acc, err := s.store.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return errInvalidChallenge()
		}
		slog.ErrorContext(ctx, "failed to look up account", "error", err)
		return goerror.NewServer(err)
	}

	if acc.Status != entity.AccountStatusPending {
		return errInvalidChallenge()
	}
	if !acc.Challenge.Valid(in.Code, s.clock.Now()) {
		return errInvalidChallenge()
	}

	status := entity.AccountStatusActive
	upd := entity.AccountUpdate{Status: &status, ClearChallenge: true}
	if err := s.store.UpdateFields(ctx, in.Email, upd); err != nil {
		slog.ErrorContext(ctx, "failed to activate account", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
