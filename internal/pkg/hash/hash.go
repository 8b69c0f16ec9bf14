// Package hash provides helpers for hashing and verifying secrets.
//
// Store only the hash, then verify user input by comparing the plaintext
// against the stored value. Passwords use bcrypt; keyed identifiers such as
// rate limiter keys use HMAC-SHA256.
package hash

// Hasher hashes plaintext secrets and verifies them against stored hashes.
type Hasher interface {
	Hash(plaintext string) ([]byte, error)
	Verify(hashed, plaintext string) bool
}
