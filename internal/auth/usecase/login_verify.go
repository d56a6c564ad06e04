package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Mohamedalijas/turfnation/internal/auth/entity"
	"github.com/Mohamedalijas/turfnation/internal/pkg/goerror"
)

// VerifyLoginOTPInput carries the second login factor.
type VerifyLoginOTPInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required"`
}

// VerifyLoginOTPOutput is the issued session.
type VerifyLoginOTPOutput struct {
	Token string
	ID    string
	Name  string
	Email string
	Role  string
}

// VerifyLoginOTP consumes the login challenge and returns a signed token.
// The challenge is cleared before the token is minted, so a code is spent
// even when signing fails.
func (s *Usecase) VerifyLoginOTP(ctx context.Context, in VerifyLoginOTPInput) (*VerifyLoginOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyLoginOTP")
	defer span.End()

	in.Email = strings.TrimSpace(in.Email)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	acc, err := s.store.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, errInvalidChallenge()
		}
		slog.ErrorContext(ctx, "failed to look up account", "error", err)
		return nil, goerror.NewServer(err)
	}

	if acc.Status != entity.AccountStatusActive {
		return nil, errInvalidChallenge()
	}
	if !acc.Challenge.Valid(in.Code, s.clock.Now()) {
		return nil, errInvalidChallenge()
	}

	if err := s.store.UpdateFields(ctx, in.Email, entity.AccountUpdate{ClearChallenge: true}); err != nil {
		slog.ErrorContext(ctx, "failed to clear login challenge", "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.jwt.Generate(acc.ID, acc.Name, acc.Email, acc.Role)
	if err != nil {
		slog.ErrorContext(ctx, "failed to sign token", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &VerifyLoginOTPOutput{
		Token: token,
		ID:    acc.ID,
		Name:  acc.Name,
		Email: acc.Email,
		Role:  acc.Role,
	}, nil
}
