package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Mohamedalijas/turfnation/internal/auth/entity"
	"github.com/Mohamedalijas/turfnation/internal/pkg/goerror"
	"github.com/Mohamedalijas/turfnation/internal/pkg/instrument"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"
)

const pgUniqueViolation = "23505"

const accountsSchema = `
CREATE TABLE IF NOT EXISTS accounts (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	email          TEXT NOT NULL UNIQUE,
	password_hash  TEXT NOT NULL,
	phone          TEXT NOT NULL DEFAULT '',
	role           TEXT NOT NULL DEFAULT '',
	turf_name      TEXT NOT NULL DEFAULT '',
	location       TEXT NOT NULL DEFAULT '',
	status         TEXT NOT NULL,
	otp_code       TEXT,
	otp_expires_at TIMESTAMPTZ,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Postgres is the Store implementation backed by a pgx connection pool.
//
// The challenge lives in the otp_code / otp_expires_at columns, which are
// always written and cleared together.
type Postgres struct {
	pool *pgxpool.Pool
	ins  instrument.Instrumentation
}

// NewPostgres wraps an existing pool and makes sure the accounts table exists.
func NewPostgres(ctx context.Context, opts PostgresOptions, ins instrument.Instrumentation) (*Postgres, error) {
	if opts.Pool == nil {
		return nil, errors.New("store: postgres pool is required")
	}

	if _, err := opts.Pool.Exec(ctx, accountsSchema); err != nil {
		return nil, fmt.Errorf("store: postgres ensure schema failed: %w", err)
	}

	return &Postgres{pool: opts.Pool, ins: ins}, nil
}

func (p *Postgres) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return p.ins.Tracer("auth.store.postgres").Start(ctx, name)
}

func wrapPostgresError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return goerror.ErrConflict
	}

	return err
}

// FindByEmail returns the account with the given email.
func (p *Postgres) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	ctx, span := p.startSpan(ctx, "FindByEmail")
	defer span.End()

	const query = `
		SELECT id, name, email, password_hash, phone, role, turf_name, location,
		       status, otp_code, otp_expires_at, created_at
		FROM accounts
		WHERE email = $1`

	var (
		acc       entity.Account
		status    string
		code      *string
		expiresAt *time.Time
	)

	err := p.pool.QueryRow(ctx, query, email).Scan(
		&acc.ID, &acc.Name, &acc.Email, &acc.PasswordHash, &acc.Phone, &acc.Role,
		&acc.TurfName, &acc.Location, &status, &code, &expiresAt, &acc.CreatedAt,
	)
	if err != nil {
		return nil, wrapPostgresError(err)
	}

	acc.Status = entity.AccountStatus(status)
	if code != nil && expiresAt != nil {
		acc.Challenge = entity.NewChallenge(*code, *expiresAt)
	}

	return &acc, nil
}

// Insert stores a new account.
func (p *Postgres) Insert(ctx context.Context, acc entity.Account) error {
	ctx, span := p.startSpan(ctx, "Insert")
	defer span.End()

	const query = `
		INSERT INTO accounts
			(id, name, email, password_hash, phone, role, turf_name, location,
			 status, otp_code, otp_expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	var (
		code      *string
		expiresAt *time.Time
	)
	if acc.Challenge != nil {
		code = &acc.Challenge.Code
		expiresAt = &acc.Challenge.ExpiresAt
	}

	_, err := p.pool.Exec(ctx, query,
		acc.ID, acc.Name, acc.Email, acc.PasswordHash, acc.Phone, acc.Role,
		acc.TurfName, acc.Location, acc.Status.String(), code, expiresAt, acc.CreatedAt,
	)

	return wrapPostgresError(err)
}

// UpdateFields applies a partial update to the account with the given email.
// A missing account is a no-op.
func (p *Postgres) UpdateFields(ctx context.Context, email string, upd entity.AccountUpdate) error {
	ctx, span := p.startSpan(ctx, "UpdateFields")
	defer span.End()

	var (
		sets []string
		args []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if upd.Status != nil {
		sets = append(sets, "status = "+arg(upd.Status.String()))
	}

	switch {
	case upd.ClearChallenge:
		sets = append(sets, "otp_code = NULL", "otp_expires_at = NULL")
	case upd.Challenge != nil:
		sets = append(sets, "otp_code = "+arg(upd.Challenge.Code))
		sets = append(sets, "otp_expires_at = "+arg(upd.Challenge.ExpiresAt))
	}

	if len(sets) == 0 {
		return nil
	}

	query := "UPDATE accounts SET " + strings.Join(sets, ", ") + " WHERE email = " + arg(email)

	_, err := p.pool.Exec(ctx, query, args...)

	return wrapPostgresError(err)
}

// Close is a no-op; the pool lifecycle is owned by the application wiring.
func (p *Postgres) Close() error {
	return nil
}
