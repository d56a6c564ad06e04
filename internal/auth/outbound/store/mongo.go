package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mohamedalijas/turfnation/internal/auth/entity"
	"github.com/Mohamedalijas/turfnation/internal/pkg/goerror"
	"github.com/Mohamedalijas/turfnation/internal/pkg/instrument"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.opentelemetry.io/otel/trace"
)

const accountsCollection = "accounts"

type challengeDoc struct {
	Code      string    `bson:"code"`
	ExpiresAt time.Time `bson:"expires_at"`
}

type accountDoc struct {
	ID           string        `bson:"_id"`
	Name         string        `bson:"name"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password_hash"`
	Phone        string        `bson:"phone"`
	Role         string        `bson:"role"`
	TurfName     string        `bson:"turf_name,omitempty"`
	Location     string        `bson:"location,omitempty"`
	Status       string        `bson:"status"`
	Challenge    *challengeDoc `bson:"challenge,omitempty"`
	CreatedAt    time.Time     `bson:"created_at"`
}

func (d *accountDoc) toEntity() *entity.Account {
	acc := &entity.Account{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Phone:        d.Phone,
		Role:         d.Role,
		TurfName:     d.TurfName,
		Location:     d.Location,
		Status:       entity.AccountStatus(d.Status),
		CreatedAt:    d.CreatedAt,
	}
	if d.Challenge != nil {
		acc.Challenge = entity.NewChallenge(d.Challenge.Code, d.Challenge.ExpiresAt)
	}

	return acc
}

func toAccountDoc(acc entity.Account) accountDoc {
	doc := accountDoc{
		ID:           acc.ID,
		Name:         acc.Name,
		Email:        acc.Email,
		PasswordHash: acc.PasswordHash,
		Phone:        acc.Phone,
		Role:         acc.Role,
		TurfName:     acc.TurfName,
		Location:     acc.Location,
		Status:       acc.Status.String(),
		CreatedAt:    acc.CreatedAt,
	}
	if acc.Challenge != nil {
		doc.Challenge = &challengeDoc{Code: acc.Challenge.Code, ExpiresAt: acc.Challenge.ExpiresAt}
	}

	return doc
}

// Mongo is the Store implementation backed by MongoDB.
type Mongo struct {
	client *mongo.Client
	col    *mongo.Collection
	ins    instrument.Instrumentation
}

// NewMongo connects to MongoDB, verifies the connection, and makes sure the
// unique email index exists.
func NewMongo(ctx context.Context, opts MongoOptions, ins instrument.Instrumentation) (*Mongo, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("store: mongo connect failed: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("store: mongo ping failed: %w", err)
	}

	col := client.Database(opts.Database).Collection(accountsCollection)

	// The unique index is the authoritative duplicate guard under races.
	_, err = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("store: mongo ensure email index failed: %w", err)
	}

	return &Mongo{client: client, col: col, ins: ins}, nil
}

func (m *Mongo) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return m.ins.Tracer("auth.store.mongo").Start(ctx, name)
}

func wrapMongoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return goerror.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return goerror.ErrConflict
	}
	return err
}

// FindByEmail returns the account with the given email.
func (m *Mongo) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	ctx, span := m.startSpan(ctx, "FindByEmail")
	defer span.End()

	var doc accountDoc
	if err := m.col.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc); err != nil {
		return nil, wrapMongoError(err)
	}

	return doc.toEntity(), nil
}

// Insert stores a new account.
func (m *Mongo) Insert(ctx context.Context, acc entity.Account) error {
	ctx, span := m.startSpan(ctx, "Insert")
	defer span.End()

	_, err := m.col.InsertOne(ctx, toAccountDoc(acc))

	return wrapMongoError(err)
}

// UpdateFields applies a partial update to the account with the given email.
// A missing account is a no-op.
func (m *Mongo) UpdateFields(ctx context.Context, email string, upd entity.AccountUpdate) error {
	ctx, span := m.startSpan(ctx, "UpdateFields")
	defer span.End()

	set := bson.D{}
	if upd.Status != nil {
		set = append(set, bson.E{Key: "status", Value: upd.Status.String()})
	}
	if upd.Challenge != nil && !upd.ClearChallenge {
		set = append(set, bson.E{Key: "challenge", Value: challengeDoc{
			Code:      upd.Challenge.Code,
			ExpiresAt: upd.Challenge.ExpiresAt,
		}})
	}

	update := bson.D{}
	if len(set) > 0 {
		update = append(update, bson.E{Key: "$set", Value: set})
	}
	if upd.ClearChallenge {
		update = append(update, bson.E{Key: "$unset", Value: bson.D{{Key: "challenge", Value: ""}}})
	}
	if len(update) == 0 {
		return nil
	}

	_, err := m.col.UpdateOne(ctx, bson.D{{Key: "email", Value: email}}, update)

	return wrapMongoError(err)
}

// Close disconnects the underlying mongo client.
func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return m.client.Disconnect(ctx)
}
