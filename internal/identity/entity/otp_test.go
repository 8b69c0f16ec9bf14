package entity

import (
	"errors"
	"testing"
	"time"
)

func TestOTPStateValidate(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	valid := &OTPState{
		Code:      "123456",
		Purpose:   OTPPurposeRegister,
		Target:    "user@example.com",
		ExpiresAt: now.Add(10 * time.Minute),
	}

	tests := []struct {
		name    string
		state   *OTPState
		code    string
		purpose OTPPurpose
		now     time.Time
		wantErr error
	}{
		{
			name:    "valid code",
			state:   valid,
			code:    "123456",
			purpose: OTPPurposeRegister,
			now:     now,
			wantErr: nil,
		},
		{
			name:    "nil state",
			state:   nil,
			code:    "123456",
			purpose: OTPPurposeRegister,
			now:     now,
			wantErr: ErrNoPendingCode,
		},
		{
			name:    "empty code",
			state:   &OTPState{},
			code:    "123456",
			purpose: OTPPurposeRegister,
			now:     now,
			wantErr: ErrNoPendingCode,
		},
		{
			name:    "wrong code",
			state:   valid,
			code:    "654321",
			purpose: OTPPurposeRegister,
			now:     now,
			wantErr: ErrCodeMismatch,
		},
		{
			name:    "wrong purpose",
			state:   valid,
			code:    "123456",
			purpose: OTPPurposeResetPassword,
			now:     now,
			wantErr: ErrPurposeMismatch,
		},
		{
			name:    "expired",
			state:   valid,
			code:    "123456",
			purpose: OTPPurposeRegister,
			now:     now.Add(11 * time.Minute),
			wantErr: ErrCodeExpired,
		},
		{
			name:    "expires exactly now",
			state:   valid,
			code:    "123456",
			purpose: OTPPurposeRegister,
			now:     valid.ExpiresAt,
			wantErr: ErrCodeExpired,
		},
		{
			name:    "one instant before expiry",
			state:   valid,
			code:    "123456",
			purpose: OTPPurposeRegister,
			now:     valid.ExpiresAt.Add(-time.Nanosecond),
			wantErr: nil,
		},
		{
			name: "wrong code on expired state reports mismatch first",
			state: &OTPState{
				Code:      "123456",
				Purpose:   OTPPurposeRegister,
				ExpiresAt: now.Add(-time.Minute),
			},
			code:    "000000",
			purpose: OTPPurposeRegister,
			now:     now,
			wantErr: ErrCodeMismatch,
		},
		{
			name: "wrong purpose on expired state reports purpose first",
			state: &OTPState{
				Code:      "123456",
				Purpose:   OTPPurposeChangePhone,
				ExpiresAt: now.Add(-time.Minute),
			},
			code:    "123456",
			purpose: OTPPurposeChangeEmail,
			now:     now,
			wantErr: ErrPurposeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.state.Validate(tt.code, tt.purpose, tt.now)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOTPPurposeFromString(t *testing.T) {
	tests := []struct {
		in   string
		want OTPPurpose
	}{
		{"REGISTER", OTPPurposeRegister},
		{"RESET_PASSWORD", OTPPurposeResetPassword},
		{"CHANGE_PHONE", OTPPurposeChangePhone},
		{"CHANGE_EMAIL", OTPPurposeChangeEmail},
		{"register", OTPPurposeUnknown},
		{"", OTPPurposeUnknown},
		{"SOMETHING", OTPPurposeUnknown},
	}

	for _, tt := range tests {
		if got := OTPPurposeFromString(tt.in); got != tt.want {
			t.Fatalf("OTPPurposeFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOTPPurposeRoundTrip(t *testing.T) {
	purposes := []OTPPurpose{
		OTPPurposeRegister,
		OTPPurposeResetPassword,
		OTPPurposeChangePhone,
		OTPPurposeChangeEmail,
	}

	for _, p := range purposes {
		if got := OTPPurposeFromString(p.String()); got != p {
			t.Fatalf("round trip of %v = %v", p, got)
		}
	}
}
