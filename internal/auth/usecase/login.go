package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Mohamedalijas/turfnation/internal/auth/entity"
	"github.com/Mohamedalijas/turfnation/internal/pkg/goerror"
)

// LoginInput carries the password authentication payload.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Login checks the password of an active account and, on success, issues a
// fresh login challenge by email. An unknown email, a pending account, and a
// wrong password all yield the same credentials error.
func (s *Usecase) Login(ctx context.Context, in LoginInput) error {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Email = strings.TrimSpace(in.Email)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	return s.guarded(ctx, "login:"+in.Email, func(ctx context.Context) error {
		acc, err := s.store.FindByEmail(ctx, in.Email)
		if err != nil {
			if errors.Is(err, goerror.ErrNotFound) {
				return errInvalidCredentials()
			}
			slog.ErrorContext(ctx, "failed to look up account", "error", err)
			return goerror.NewServer(err)
		}

		if acc.Status != entity.AccountStatusActive {
			slog.WarnContext(ctx, "login attempt on unverified account")
			return errInvalidCredentials()
		}
		if !s.bcrypt.Verify(acc.PasswordHash, in.Password) {
			return errInvalidCredentials()
		}

		code, err := s.codes.Generate()
		if err != nil {
			slog.ErrorContext(ctx, "failed to generate otp code", "error", err)
			return goerror.NewServer(err)
		}

		challenge := entity.NewChallenge(code, s.clock.Now().Add(s.otpTTL()))
		if err := s.store.UpdateFields(ctx, in.Email, entity.AccountUpdate{Challenge: challenge}); err != nil {
			slog.ErrorContext(ctx, "failed to store login challenge", "error", err)
			return goerror.NewServer(err)
		}

		if err := s.notifier.Send(ctx, in.Email, "Login OTP", "Your login OTP is: "+code); err != nil {
			slog.ErrorContext(ctx, "failed to send login otp email", "error", err)
			return goerror.NewServer(err)
		}

		return nil
	})
}
