package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/danishfaisall/gokart/internal/identity/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
	"github.com/danishfaisall/gokart/internal/pkg/jwt"
)

func userWithOTP(purpose entity.OTPPurpose) *entity.User {
	u := verifiedUser()
	u.IsVerified = false
	u.OTP = &entity.OTPState{
		Code:      testOTPCode,
		Purpose:   purpose,
		Target:    u.Email,
		ExpiresAt: testNow.Add(5 * time.Minute),
	}
	return u
}

func TestOTPVerify(t *testing.T) {
	t.Run("register code verifies account and opens session", func(t *testing.T) {
		d := newTestDeps()
		d.db.getUserByEmail = func(context.Context, string) (*entity.User, error) {
			return userWithOTP(entity.OTPPurposeRegister), nil
		}

		var consumed int64
		d.db.consumeOTPRegister = func(_ context.Context, userID int64) error {
			consumed = userID
			return nil
		}

		uc := newTestUsecase(t, d)

		out, err := uc.OTPVerify(context.Background(), OTPVerifyInput{
			Email:   "jane@example.com",
			Code:    testOTPCode,
			Purpose: "REGISTER",
		})
		if err != nil {
			t.Fatalf("OTPVerify() error = %v", err)
		}

		if consumed != 7 {
			t.Fatalf("consumed user id = %d, want 7", consumed)
		}
		if out.AccessToken != "access-token" {
			t.Fatalf("access token = %q", out.AccessToken)
		}
		if out.ResetToken != "" {
			t.Fatalf("reset token = %q, want empty", out.ResetToken)
		}
		if out.User == nil || !out.User.IsVerified || out.User.OTP != nil {
			t.Fatalf("user = %+v, want verified with no pending code", out.User)
		}
	})

	t.Run("reset code mints scoped reset token", func(t *testing.T) {
		d := newTestDeps()
		u := userWithOTP(entity.OTPPurposeResetPassword)
		u.IsVerified = true
		d.db.getUserByEmail = func(context.Context, string) (*entity.User, error) {
			return u, nil
		}

		var consumed int64
		d.db.consumeOTP = func(_ context.Context, userID int64) error {
			consumed = userID
			return nil
		}

		d.jwt.generateScoped = func(uid int64, email, scope string, ttl time.Duration) (string, error) {
			if scope != jwt.ScopePasswordReset {
				t.Fatalf("scope = %q, want password reset", scope)
			}
			if ttl != 15*time.Minute {
				t.Fatalf("ttl = %v, want 15m", ttl)
			}
			return "reset-token", nil
		}

		uc := newTestUsecase(t, d)

		out, err := uc.OTPVerify(context.Background(), OTPVerifyInput{
			Email:   "jane@example.com",
			Code:    testOTPCode,
			Purpose: "RESET_PASSWORD",
		})
		if err != nil {
			t.Fatalf("OTPVerify() error = %v", err)
		}

		if consumed != 7 {
			t.Fatalf("consumed user id = %d, want 7", consumed)
		}
		if out.ResetToken != "reset-token" {
			t.Fatalf("reset token = %q", out.ResetToken)
		}
		if out.AccessToken != "" || out.User != nil {
			t.Fatalf("output = %+v, want reset token only", out)
		}
	})

	t.Run("unknown email reads as invalid code", func(t *testing.T) {
		uc := newTestUsecase(t, newTestDeps())

		_, err := uc.OTPVerify(context.Background(), OTPVerifyInput{
			Email:   "nobody@example.com",
			Code:    testOTPCode,
			Purpose: "REGISTER",
		})

		assertBusinessError(t, err, "Invalid verification code", goerror.CodeInvalidInput)
	})

	t.Run("failed validation does not consume the code", func(t *testing.T) {
		tests := []struct {
			name    string
			user    *entity.User
			code    string
			purpose string
			wantMsg string
		}{
			{
				name:    "no pending code",
				user:    verifiedUser(),
				code:    testOTPCode,
				purpose: "REGISTER",
				wantMsg: "No verification code is pending",
			},
			{
				name:    "wrong code",
				user:    userWithOTP(entity.OTPPurposeRegister),
				code:    "000000",
				purpose: "REGISTER",
				wantMsg: "Invalid verification code",
			},
			{
				name:    "wrong purpose",
				user:    userWithOTP(entity.OTPPurposeRegister),
				code:    testOTPCode,
				purpose: "RESET_PASSWORD",
				wantMsg: "Invalid verification code",
			},
			{
				name: "expired code",
				user: func() *entity.User {
					u := userWithOTP(entity.OTPPurposeRegister)
					u.OTP.ExpiresAt = testNow.Add(-time.Second)
					return u
				}(),
				code:    testOTPCode,
				purpose: "REGISTER",
				wantMsg: "Verification code has expired",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				d := newTestDeps()
				d.db.getUserByEmail = func(context.Context, string) (*entity.User, error) {
					return tt.user, nil
				}
				d.db.consumeOTPRegister = func(context.Context, int64) error {
					t.Fatal("register code consumed on failed validation")
					return nil
				}
				d.db.consumeOTP = func(context.Context, int64) error {
					t.Fatal("code consumed on failed validation")
					return nil
				}
				uc := newTestUsecase(t, d)

				_, err := uc.OTPVerify(context.Background(), OTPVerifyInput{
					Email:   "jane@example.com",
					Code:    tt.code,
					Purpose: tt.purpose,
				})

				assertBusinessError(t, err, tt.wantMsg, goerror.CodeInvalidInput)
			})
		}
	})

	t.Run("purpose outside the unauthenticated set is rejected upfront", func(t *testing.T) {
		uc := newTestUsecase(t, newTestDeps())

		_, err := uc.OTPVerify(context.Background(), OTPVerifyInput{
			Email:   "jane@example.com",
			Code:    testOTPCode,
			Purpose: "CHANGE_PHONE",
		})

		assertInvalidInput(t, err)
	})
}
