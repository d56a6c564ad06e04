package entity

// AccountStatus is the lifecycle state of an account.
//
// The only legal transition is pending -> active; an active account never goes
// back to pending.
type AccountStatus string

const (
	// AccountStatusPending means the account exists but its email is unverified.
	AccountStatusPending AccountStatus = "pending"
	// AccountStatusActive means the email has been verified and login is allowed.
	AccountStatusActive AccountStatus = "active"
)

// String returns the stored representation of the status.
func (s AccountStatus) String() string {
	return string(s)
}

// Known reports whether the status is one of the recognized values.
func (s AccountStatus) Known() bool {
	return s == AccountStatusPending || s == AccountStatusActive
}
