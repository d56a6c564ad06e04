package app

import (
	"context"
	"net/http"

	"github.com/Mohamedalijas/turfnation/internal/auth/outbound/store"
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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	oid       uid.StringID
	uuid      uid.StringID
	codes     otp.Generator
	jwt       jwt.JWT

	// resources
	store     store.Store
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	guard     idempotency.Guard
	mail      mail.Mail

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initStore()
	app.initCache()
	app.initMail()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
