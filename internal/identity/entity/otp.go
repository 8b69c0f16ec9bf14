package entity

import (
	"errors"
	"time"
)

var (
	ErrNoPendingCode   = errors.New("identity: no pending verification code")
	ErrCodeMismatch    = errors.New("identity: verification code does not match")
	ErrPurposeMismatch = errors.New("identity: verification code purpose does not match")
	ErrCodeExpired     = errors.New("identity: verification code has expired")
)

// OTPState is the outstanding one-time code attached to a user row. All
// fields are written together on issuance and cleared together on
// consumption; a nil OTPState means no code is pending. At most one code is
// outstanding per user, so issuing a new code for any purpose supersedes the
// previous one.
type OTPState struct {
	Code      string
	Purpose   OTPPurpose
	Target    string
	ExpiresAt time.Time
}

// Validate checks a supplied code against the outstanding state. Checks run
// in a fixed order and the first failure wins; a failed validation never
// consumes the outstanding code. Expiry is strict: a code presented exactly
// at its expiry instant is already expired.
func (s *OTPState) Validate(code string, purpose OTPPurpose, now time.Time) error {
	if s == nil || s.Code == "" {
		return ErrNoPendingCode
	}

	if s.Code != code {
		return ErrCodeMismatch
	}

	if s.Purpose != purpose {
		return ErrPurposeMismatch
	}

	if !now.Before(s.ExpiresAt) {
		return ErrCodeExpired
	}

	return nil
}
