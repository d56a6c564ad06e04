package app

import (
	"log/slog"
	"os"

	"github.com/Mohamedalijas/turfnation/internal/auth"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.auth.enabled") {
		if err := auth.New(auth.Dependency{
			Store:      a.store,
			Mail:       a.mail,
			Router:     a.router,
			Guard:      a.guard,
			Config:     a.config,
			Instrument: a.ins,
			OID:        a.oid,
			Bcrypt:     a.bcrypt,
			Codes:      a.codes,
			Clock:      a.clock,
			Validator:  a.validator,
			JWT:        a.jwt,
		}); err != nil {
			slog.Error("failed to init module auth", "error", err)
			os.Exit(1)
		}
	}
}
