package otp

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	codeMin = 100000
	codeMax = 999999
)

// Generator produces one-time codes. Implementations must return a 6-digit
// decimal string; tests can swap in a deterministic sequence.
type Generator interface {
	Generate() (string, error)
}

// CryptoNumeric implements Generator using crypto/rand.
type CryptoNumeric struct{}

// NewCryptoNumeric returns a Generator backed by the OS entropy source.
func NewCryptoNumeric() *CryptoNumeric {
	return &CryptoNumeric{}
}

// Generate returns a uniform random code in [100000, 999999].
func (*CryptoNumeric) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(codeMin+n.Int64(), 10), nil
}
