package usecase

import (
	"context"

	"github.com/Mohamedalijas/turfnation/internal/pkg/goerror"
	"github.com/Mohamedalijas/turfnation/internal/pkg/jwt"
)

// ProfileOutput is the authenticated account's identity.
type ProfileOutput struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// Profile returns the identity embedded in the verified token claims.
func (s *Usecase) Profile(ctx context.Context) (*ProfileOutput, error) {
	_, span := s.startSpan(ctx, "Profile")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return &ProfileOutput{
		ID:    clm.Subject,
		Name:  clm.Name,
		Email: clm.UserEmail,
		Role:  clm.Role,
	}, nil
}
