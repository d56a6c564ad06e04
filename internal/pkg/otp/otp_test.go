package otp

import (
	"strconv"
	"testing"
)

func TestGenerateRange(t *testing.T) {
	gen := NewCryptoNumeric()

	for i := 0; i < 2000; i++ {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}

		if len(code) != 6 {
			t.Fatalf("code %q is not 6 digits", code)
		}

		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric: %v", code, err)
		}
		if n < codeMin || n > codeMax {
			t.Fatalf("code %d out of range [%d, %d]", n, codeMin, codeMax)
		}
	}
}
