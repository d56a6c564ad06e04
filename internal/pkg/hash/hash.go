package hash

// Hash abstracts one-way hashing of secrets such as passwords.
type Hash interface {
	// Hash produces a hash of the plaintext.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the hashed value.
	Verify(hashed, plaintext string) bool
}
