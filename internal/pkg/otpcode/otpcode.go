// Package otpcode generates one-time verification codes.
//
// Codes are fixed-length decimal strings drawn uniformly at random, so every
// code in the space is equally likely. Callers should depend on the Generator
// interface so tests can substitute deterministic codes.
package otpcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Generator produces one-time codes.
type Generator interface {
	Generate() (string, error)
}

// Numeric generates decimal codes of a fixed length using crypto/rand.
type Numeric struct {
	length int
	max    *big.Int
}

// NewNumeric returns a generator for codes of the given length (1-18 digits).
func NewNumeric(length int) *Numeric {
	if length < 1 || length > 18 {
		length = 6
	}

	max := big.NewInt(10)
	max.Exp(max, big.NewInt(int64(length)), nil)

	return &Numeric{length: length, max: max}
}

// Generate returns a new zero-padded decimal code.
func (n *Numeric) Generate() (string, error) {
	v, err := rand.Int(rand.Reader, n.max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", n.length, v), nil
}

// Func adapts an ordinary function to the Generator interface.
type Func func() (string, error)

// Generate returns the result of calling the wrapped function.
func (f Func) Generate() (string, error) {
	return f()
}
