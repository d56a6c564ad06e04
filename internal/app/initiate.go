package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

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
	"github.com/rs/cors"
)

func (a *App) initConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "/config/config.yaml"
		if os.Getenv("LOCAL") == "true" {
			path = "./config/config.yaml"
		}
	}

	cfg, err := config.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("app.tz"))

	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		Enabled:          true,
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
	})
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(1)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()
	a.codes = otp.NewCryptoNumeric()
	a.bcrypt = hash.NewBcrypt(a.config.GetInt("hash.bcrypt.cost"), a.config.GetString("hash.bcrypt.pepper"))

	validator, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		os.Exit(1)
	}
	a.validator = validator

	objID, err := uid.NewObjectIDGenerator()
	if err != nil {
		slog.Error("failed to init uid string object_id", "error", err)
		os.Exit(1)
	}
	a.oid = objID
}

func (a *App) initJWT() {
	defaultJWT, err := jwt.NewHS512(jwt.Config{
		Secret:     []byte(a.config.GetString("jwt.secret")),
		Issuer:     a.config.GetString("jwt.issuer"),
		Audiences:  a.config.GetArray("jwt.audiences"),
		TTLMinutes: a.config.GetMinute("jwt.ttl_minutes"),
		Clock:      a.clock,
		UUID:       a.uuid,
	})
	if err != nil {
		slog.Error("failed to init jwt token", "error", err)
		os.Exit(1)
	}
	a.jwt = defaultJWT
}

func (a *App) initStore() {
	driver := a.config.GetString("store.driver")

	// The pgx pool is built here so its lifecycle stays with the app.
	var pool *pgxpool.Pool
	if driver == store.DriverPostgres {
		config, err := pgxpool.ParseConfig(a.config.GetString("database.url"))
		if err != nil {
			slog.Error("failed to parse DB connection string.", "error", err)
			os.Exit(1)
		}

		config.MaxConns = a.config.GetInt32("database.pool.max_conns")
		config.MinConns = a.config.GetInt32("database.pool.min_conns")
		config.MaxConnLifetime = a.config.GetSecond("database.pool.max_conn_lifetime_seconds")
		config.MaxConnIdleTime = a.config.GetSecond("database.pool.max_conn_idle_seconds")
		config.HealthCheckPeriod = a.config.GetSecond("database.pool.health_check_period_seconds")

		pool, err = pgxpool.NewWithConfig(a.ctx, config)
		if err != nil {
			slog.Error("failed to create DB connection pool", "error", err)
			os.Exit(1)
		}

		pingCtx, cancel := context.WithTimeout(a.ctx, 5*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			slog.Error("failed to ping DB", "error", err)
			os.Exit(1)
		}

		a.dbConn = pool
	}

	st, err := store.NewFromDriver(a.ctx, driver, a.ins, store.FactoryOptions{
		Mongo: store.MongoOptions{
			URI:      a.config.GetString("store.mongo.uri"),
			Database: a.config.GetString("store.mongo.database"),
		},
		Postgres: store.PostgresOptions{Pool: pool},
	})
	if err != nil {
		slog.Error("failed to init store", "error", err, "driver", driver)
		os.Exit(1)
	}

	a.store = st
}

func (a *App) initCache() {
	opt, err := redis.ParseURL(a.config.GetString("redis.url"))
	if err != nil {
		slog.Error("failed to parse redis url", "error", err)
		os.Exit(1)
	}

	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(a.ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Error("failed to init redis", "error", err)
		os.Exit(1)
	}

	a.cacheConn = rdb
	a.guard = idempotency.New(a.cacheConn)
}

func (a *App) initMail() {
	mail, err := mail.NewSMTP(mail.SMTPConfig{
		Host:     a.config.GetString("mail.host"),
		Port:     a.config.GetInt("mail.port"),
		Username: a.config.GetString("mail.username"),
		Password: a.config.GetString("mail.password"),
		From:     a.config.GetString("mail.from"),
	})
	if err != nil {
		slog.Error("failed to init mail", "error", err)
		os.Exit(1)
	}

	a.mail = mail
}

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		JWT:        a.jwt,
		Instrument: a.ins,
	})

	routerWithCORS := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("app.server.cors"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(a.router)

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("app.server.http.address"),
		Handler:           routerWithCORS,
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: a.config.GetSecond("app.server.http.read_header_timeout_seconds"),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}
}

func (a *App) initClosers() {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Redis",
			fn: func(context.Context) error {
				return a.cacheConn.Close()
			},
		},
		{
			name: "Store",
			fn: func(context.Context) error {
				return a.store.Close()
			},
		},
		{
			name: "Database",
			fn: func(context.Context) error {
				if a.dbConn != nil {
					a.dbConn.Close()
				}

				return nil
			},
		},
		{
			name: "Mail",
			fn: func(context.Context) error {
				return a.mail.Close()
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}
}
