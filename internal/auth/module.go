package auth

import (
	"github.com/Mohamedalijas/turfnation/internal/auth/inbound"
	"github.com/Mohamedalijas/turfnation/internal/auth/outbound/email"
	"github.com/Mohamedalijas/turfnation/internal/auth/outbound/store"
	"github.com/Mohamedalijas/turfnation/internal/auth/usecase"
	"github.com/Mohamedalijas/turfnation/internal/pkg/clock"
	"github.com/Mohamedalijas/turfnation/internal/pkg/config"
	"github.com/Mohamedalijas/turfnation/internal/pkg/hash"
	"github.com/Mohamedalijas/turfnation/internal/pkg/idempotency"
	"github.com/Mohamedalijas/turfnation/internal/pkg/instrument"
	"github.com/Mohamedalijas/turfnation/internal/pkg/jwt"
	"github.com/Mohamedalijas/turfnation/internal/pkg/mail"
	"github.com/Mohamedalijas/turfnation/internal/pkg/otp"
	"github.com/Mohamedalijas/turfnation/internal/pkg/router"
	"github.com/Mohamedalijas/turfnation/internal/pkg/uid"
	"github.com/Mohamedalijas/turfnation/internal/pkg/validator"
)

type Dependency struct {
	Store      store.Store                `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Guard      idempotency.Guard          `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	OID        uid.StringID               `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	Codes      otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	notifier := email.NewNotifier(dep.Mail, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		Store:      dep.Store,
		Notifier:   notifier,
		Guard:      dep.Guard,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Bcrypt:     dep.Bcrypt,
		OID:        dep.OID,
		Codes:      dep.Codes,
		Clock:      dep.Clock,
		JWT:        dep.JWT,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
