package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/danishfaisall/gokart/internal/identity/entity"
)

func TestOTPResend(t *testing.T) {
	t.Run("issues fresh code for pending registration", func(t *testing.T) {
		d := newTestDeps()
		d.db.getUserByEmail = func(context.Context, string) (*entity.User, error) {
			u := verifiedUser()
			u.IsVerified = false
			return u, nil
		}

		var storedOTP entity.OTPState
		d.db.setOTP = func(_ context.Context, userID int64, otp entity.OTPState) error {
			if userID != 7 {
				t.Fatalf("SetOTP user id = %d, want 7", userID)
			}
			storedOTP = otp
			return nil
		}

		var published OTPIssuedEvent
		d.msg.publishOTPIssued = func(_ context.Context, msg OTPIssuedEvent) error {
			published = msg
			return nil
		}

		uc := newTestUsecase(t, d)

		err := uc.OTPResend(context.Background(), OTPResendInput{
			Email:   "jane@example.com",
			Purpose: "REGISTER",
		})
		if err != nil {
			t.Fatalf("OTPResend() error = %v", err)
		}

		if storedOTP.Code != testOTPCode || storedOTP.Purpose != entity.OTPPurposeRegister {
			t.Fatalf("stored otp = %+v", storedOTP)
		}
		if !storedOTP.ExpiresAt.Equal(testNow.Add(10 * time.Minute)) {
			t.Fatalf("stored expiry = %v, want now+10m", storedOTP.ExpiresAt)
		}
		if published.Recipient != "jane@example.com" {
			t.Fatalf("published recipient = %q", published.Recipient)
		}
	})

	t.Run("unknown email succeeds without issuing anything", func(t *testing.T) {
		d := newTestDeps()
		d.db.setOTP = func(context.Context, int64, entity.OTPState) error {
			t.Fatal("code stored for unknown email")
			return nil
		}
		uc := newTestUsecase(t, d)

		if err := uc.OTPResend(context.Background(), OTPResendInput{
			Email:   "nobody@example.com",
			Purpose: "REGISTER",
		}); err != nil {
			t.Fatalf("OTPResend() error = %v", err)
		}
	})

	t.Run("verified account gets no registration code", func(t *testing.T) {
		d := newTestDeps()
		d.db.getUserByEmail = func(context.Context, string) (*entity.User, error) {
			return verifiedUser(), nil
		}
		d.db.setOTP = func(context.Context, int64, entity.OTPState) error {
			t.Fatal("code stored for verified account")
			return nil
		}
		uc := newTestUsecase(t, d)

		if err := uc.OTPResend(context.Background(), OTPResendInput{
			Email:   "jane@example.com",
			Purpose: "REGISTER",
		}); err != nil {
			t.Fatalf("OTPResend() error = %v", err)
		}
	})

	t.Run("verified account still gets a reset code", func(t *testing.T) {
		d := newTestDeps()
		d.db.getUserByEmail = func(context.Context, string) (*entity.User, error) {
			return verifiedUser(), nil
		}

		var storedOTP entity.OTPState
		d.db.setOTP = func(_ context.Context, _ int64, otp entity.OTPState) error {
			storedOTP = otp
			return nil
		}
		uc := newTestUsecase(t, d)

		if err := uc.OTPResend(context.Background(), OTPResendInput{
			Email:   "jane@example.com",
			Purpose: "RESET_PASSWORD",
		}); err != nil {
			t.Fatalf("OTPResend() error = %v", err)
		}

		if storedOTP.Purpose != entity.OTPPurposeResetPassword {
			t.Fatalf("stored purpose = %v, want reset password", storedOTP.Purpose)
		}
	})

	t.Run("invalid purpose rejected", func(t *testing.T) {
		uc := newTestUsecase(t, newTestDeps())

		err := uc.OTPResend(context.Background(), OTPResendInput{
			Email:   "jane@example.com",
			Purpose: "CHANGE_EMAIL",
		})

		assertInvalidInput(t, err)
	})
}
