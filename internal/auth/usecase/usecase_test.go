package usecase

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Mohamedalijas/turfnation/internal/auth/entity"
	"github.com/Mohamedalijas/turfnation/internal/pkg/config"
	"github.com/Mohamedalijas/turfnation/internal/pkg/goerror"
	"github.com/Mohamedalijas/turfnation/internal/pkg/idempotency"
	"github.com/Mohamedalijas/turfnation/internal/pkg/instrument"
	"github.com/Mohamedalijas/turfnation/internal/pkg/jwt"
	"github.com/Mohamedalijas/turfnation/internal/pkg/uid"
	"github.com/Mohamedalijas/turfnation/internal/pkg/validator"
)

type memStore struct {
	mu       sync.Mutex
	accounts map[string]entity.Account

	findErr   error
	insertErr error
	updateErr error
}

func newMemStore() *memStore {
	return &memStore{accounts: make(map[string]entity.Account)}
}

func (m *memStore) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findErr != nil {
		return nil, m.findErr
	}
	acc, ok := m.accounts[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &acc, nil
}

func (m *memStore) Insert(_ context.Context, acc entity.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.insertErr != nil {
		return m.insertErr
	}
	if _, ok := m.accounts[acc.Email]; ok {
		return goerror.ErrConflict
	}
	m.accounts[acc.Email] = acc
	return nil
}

func (m *memStore) UpdateFields(_ context.Context, email string, upd entity.AccountUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.updateErr != nil {
		return m.updateErr
	}
	acc, ok := m.accounts[email]
	if !ok {
		return nil
	}
	if upd.Status != nil {
		acc.Status = *upd.Status
	}
	if upd.ClearChallenge {
		acc.Challenge = nil
	} else if upd.Challenge != nil {
		acc.Challenge = upd.Challenge
	}
	m.accounts[email] = acc
	return nil
}

func (m *memStore) get(t *testing.T, email string) entity.Account {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[email]
	if !ok {
		t.Fatalf("account %q not found in store", email)
	}
	return acc
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMail
	fail error
}

func (f *fakeNotifier) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail != nil {
		return f.fail
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (f *fakeNotifier) last(t *testing.T) sentMail {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.sent) == 0 {
		t.Fatal("no mail was sent")
	}
	return f.sent[len(f.sent)-1]
}

type seqCodes struct {
	mu    sync.Mutex
	codes []string
	next  int
}

func (s *seqCodes) Generate() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next >= len(s.codes) {
		return "", errors.New("out of codes")
	}
	code := s.codes[s.next]
	s.next++
	return code, nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type passGuard struct{}

func (passGuard) Exec(ctx context.Context, _ string, fn func(context.Context) error) error {
	return fn(ctx)
}

type busyGuard struct{}

func (busyGuard) Exec(context.Context, string, func(context.Context) error) error {
	return idempotency.ErrInFlight
}

type plainHash struct{}

func (plainHash) Hash(plaintext string) ([]byte, error) { return []byte("h:" + plaintext), nil }

func (plainHash) Verify(hashed, plaintext string) bool { return hashed == "h:"+plaintext }

type fixture struct {
	store    *memStore
	notifier *fakeNotifier
	codes    *seqCodes
	clock    *fakeClock
	uc       *Usecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("build validator: %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte("modules:\n  auth:\n    otp_ttl_minutes: 1\n"))
	if err != nil {
		t.Fatalf("build config: %v", err)
	}

	// Token verification checks expiry against wall-clock time, so the fake
	// clock starts at the real now and only moves by explicit advances.
	clk := &fakeClock{now: time.Now()}

	signer, err := jwt.NewHS512(jwt.Config{
		Secret:     bytes.Repeat([]byte("s"), 64),
		Issuer:     "turfnation",
		Audiences:  []string{"turfnation-api"},
		TTLMinutes: 15 * time.Minute,
		Clock:      clk,
		UUID:       uid.NewUUID(),
	})
	if err != nil {
		t.Fatalf("build jwt: %v", err)
	}

	oid, err := uid.NewObjectIDGenerator()
	if err != nil {
		t.Fatalf("build id generator: %v", err)
	}

	f := &fixture{
		store:    newMemStore(),
		notifier: &fakeNotifier{},
		codes:    &seqCodes{codes: []string{"111111", "222222", "333333", "444444"}},
		clock:    clk,
	}
	f.uc = New(Dependency{
		Store:      f.store,
		Notifier:   f.notifier,
		Guard:      passGuard{},
		Validator:  v10,
		Config:     cfg,
		Bcrypt:     plainHash{},
		OID:        oid,
		Codes:      f.codes,
		Clock:      clk,
		JWT:        signer,
		Instrument: instrument.NewNoop(),
	})
	return f
}

func validSignup() SignupInput {
	return SignupInput{
		Name:     "Arjun Kumar",
		Email:    "arjun@example.com",
		Password: "S3cret!pass",
		Phone:    "+919876543210",
		Role:     "owner",
		TurfName: "Green Arena",
		Location: "Chennai",
	}
}

func assertBusinessError(t *testing.T, err error, wantMsg string, wantCode goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}
	if gerr.Msg() != wantMsg {
		t.Errorf("error message = %q, want %q", gerr.Msg(), wantMsg)
	}
	if gerr.Code() != wantCode {
		t.Errorf("error code = %v, want %v", gerr.Code(), wantCode)
	}
}
