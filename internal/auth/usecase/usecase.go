package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Mohamedalijas/turfnation/internal/auth/entity"
	"github.com/Mohamedalijas/turfnation/internal/pkg/clock"
	"github.com/Mohamedalijas/turfnation/internal/pkg/config"
	"github.com/Mohamedalijas/turfnation/internal/pkg/goerror"
	"github.com/Mohamedalijas/turfnation/internal/pkg/hash"
	"github.com/Mohamedalijas/turfnation/internal/pkg/idempotency"
	"github.com/Mohamedalijas/turfnation/internal/pkg/instrument"
	"github.com/Mohamedalijas/turfnation/internal/pkg/jwt"
	"github.com/Mohamedalijas/turfnation/internal/pkg/otp"
	"github.com/Mohamedalijas/turfnation/internal/pkg/uid"
	"github.com/Mohamedalijas/turfnation/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type accountStore interface {
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	Insert(ctx context.Context, acc entity.Account) error
	UpdateFields(ctx context.Context, email string, upd entity.AccountUpdate) error
}

type notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Usecase implements the signup and login flows.
type Usecase struct {
	store     accountStore
	notifier  notifier
	guard     idempotency.Guard
	validator validator.Validator
	cfg       config.Config
	bcrypt    hash.Hash
	oid       uid.StringID
	codes     otp.Generator
	clock     clock.Clocker
	jwt       jwt.JWT
	ins       instrument.Instrumentation
}

// Dependency lists everything a Usecase needs.
type Dependency struct {
	Store      accountStore
	Notifier   notifier
	Guard      idempotency.Guard
	Validator  validator.Validator
	Config     config.Config
	Bcrypt     hash.Hash
	OID        uid.StringID
	Codes      otp.Generator
	Clock      clock.Clocker
	JWT        jwt.JWT
	Instrument instrument.Instrumentation
}

// New constructs a Usecase.
func New(dep Dependency) *Usecase {
	return &Usecase{
		store:     dep.Store,
		notifier:  dep.Notifier,
		guard:     dep.Guard,
		validator: dep.Validator,
		cfg:       dep.Config,
		bcrypt:    dep.Bcrypt,
		oid:       dep.OID,
		codes:     dep.Codes,
		clock:     dep.Clock,
		jwt:       dep.JWT,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.usecase").Start(ctx, name)
}

// otpTTL returns the configured challenge lifetime, defaulting to one minute.
func (s *Usecase) otpTTL() time.Duration {
	ttl := s.cfg.GetMinute("modules.auth.otp_ttl_minutes")
	if ttl <= 0 {
		ttl = time.Minute
	}
	return ttl
}

// guarded serializes fn on key and normalizes guard failures into the
// application error vocabulary.
func (s *Usecase) guarded(ctx context.Context, key string, fn func(context.Context) error) error {
	err := s.guard.Exec(ctx, key, fn)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, idempotency.ErrInFlight):
		return goerror.NewBusiness("Request already in progress", goerror.CodeTooManyRequest)
	default:
		var gerr *goerror.Error
		if errors.As(err, &gerr) {
			return err
		}
		return goerror.NewServer(err)
	}
}

func errInvalidChallenge() error {
	return goerror.NewBusiness("Invalid or expired OTP", goerror.CodeBadRequest)
}

func errInvalidCredentials() error {
	return goerror.NewBusiness("Invalid credentials", goerror.CodeUnauthorized)
}
