package entity

import "time"

// Account is a registered (or registering) user of the platform.
//
// Email is the unique lookup key. PasswordHash is a bcrypt hash and must never
// be logged or serialized outward. Challenge is present only while a one-time
// code is outstanding.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Role         string
	TurfName     string
	Location     string
	Status       AccountStatus
	Challenge    *Challenge
	CreatedAt    time.Time
}

// Challenge is an outstanding one-time code bound to an account.
type Challenge struct {
	Code      string
	ExpiresAt time.Time
}

// NewChallenge builds a challenge expiring at the given instant.
func NewChallenge(code string, expiresAt time.Time) *Challenge {
	return &Challenge{Code: code, ExpiresAt: expiresAt}
}

// Valid reports whether code matches this challenge at the given time.
// An absent challenge, a mismatched code, and an expired code are all
// indistinguishable: Valid returns false for each. The expiry instant itself
// still counts as valid.
func (c *Challenge) Valid(code string, now time.Time) bool {
	if c == nil || c.Code == "" || code == "" {
		return false
	}
	if code != c.Code {
		return false
	}

	return !now.After(c.ExpiresAt)
}

// AccountUpdate describes a partial update applied by the store.
//
// Nil fields are left untouched. ClearChallenge removes the outstanding
// challenge; it wins over Challenge when both are set.
type AccountUpdate struct {
	Status         *AccountStatus
	Challenge      *Challenge
	ClearChallenge bool
}
