// Package store persists accounts behind a driver-agnostic contract.
package store

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Mohamedalijas/turfnation/internal/auth/entity"
	"github.com/Mohamedalijas/turfnation/internal/pkg/instrument"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Supported driver names.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Store is the account persistence contract used by the auth module.
//
// FindByEmail returns goerror.ErrNotFound when no account matches. Insert
// returns goerror.ErrConflict on a duplicate email; the unique index is the
// authoritative guard against races. UpdateFields applies a partial update to
// one account and is a no-op when the email does not exist.
type Store interface {
	io.Closer
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	Insert(ctx context.Context, acc entity.Account) error
	UpdateFields(ctx context.Context, email string, upd entity.AccountUpdate) error
}

// MongoOptions configures the mongo driver.
type MongoOptions struct {
	URI      string
	Database string
}

// PostgresOptions configures the postgres driver. The pool is injected so its
// lifecycle stays owned by the application wiring.
type PostgresOptions struct {
	Pool *pgxpool.Pool
}

// FactoryOptions carries per-driver settings for NewFromDriver.
type FactoryOptions struct {
	Mongo    MongoOptions
	Postgres PostgresOptions
}

// NewFromDriver builds the Store selected by driver.
func NewFromDriver(ctx context.Context, driver string, ins instrument.Instrumentation, opts FactoryOptions) (Store, error) {
	switch strings.TrimSpace(driver) {
	case DriverMongo:
		return NewMongo(ctx, opts.Mongo, ins)
	case DriverPostgres:
		return NewPostgres(ctx, opts.Postgres, ins)
	default:
		return nil, fmt.Errorf("unsupported store driver: %q", driver)
	}
}
