package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Mohamedalijas/turfnation/internal/auth/entity"
	"github.com/Mohamedalijas/turfnation/internal/pkg/goerror"
)

// SignupInput carries the registration payload.
type SignupInput struct {
	Name     string `validate:"required,min=2,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	Phone    string
	Role     string
	TurfName string
	Location string
}

// Signup registers a new pending account and emails it a verification code.
// The account stays pending until the code is confirmed.
func (s *Usecase) Signup(ctx context.Context, in SignupInput) error {
	ctx, span := s.startSpan(ctx, "Signup")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	return s.guarded(ctx, "signup:"+in.Email, func(ctx context.Context) error {
		_, err := s.store.FindByEmail(ctx, in.Email)
		if err == nil {
			return goerror.NewBusiness("Email already registered", goerror.CodeConflict)
		}
		if !errors.Is(err, goerror.ErrNotFound) {
			slog.ErrorContext(ctx, "failed to look up account", "error", err)
			return goerror.NewServer(err)
		}

		hashed, err := s.bcrypt.Hash(in.Password)
		if err != nil {
			slog.ErrorContext(ctx, "failed to hash password", "error", err)
			return goerror.NewServer(err)
		}

		code, err := s.codes.Generate()
		if err != nil {
			slog.ErrorContext(ctx, "failed to generate otp code", "error", err)
			return goerror.NewServer(err)
		}

		now := s.clock.Now()
		acc := entity.Account{
			ID:           s.oid.Generate(),
			Name:         in.Name,
			Email:        in.Email,
			PasswordHash: string(hashed),
			Phone:        in.Phone,
			Role:         in.Role,
			TurfName:     in.TurfName,
			Location:     in.Location,
			Status:       entity.AccountStatusPending,
			Challenge:    entity.NewChallenge(code, now.Add(s.otpTTL())),
			CreatedAt:    now,
		}
		if err := s.store.Insert(ctx, acc); err != nil {
			if errors.Is(err, goerror.ErrConflict) {
				return goerror.NewBusiness("Email already registered", goerror.CodeConflict)
			}
			slog.ErrorContext(ctx, "failed to insert account", "error", err)
			return goerror.NewServer(err)
		}

		if err := s.notifier.Send(ctx, in.Email, "OTP Verification", "Your OTP is: "+code); err != nil {
			slog.ErrorContext(ctx, "failed to send signup otp email", "error", err)
			return goerror.NewServer(err)
		}

		return nil
	})
}
