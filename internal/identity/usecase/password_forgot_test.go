package usecase

import (
	"context"
	"testing"

	"github.com/danishfaisall/gokart/internal/identity/entity"
)

func TestPasswordForgot(t *testing.T) {
	t.Run("issues reset code to the account email", func(t *testing.T) {
		d := newTestDeps()
		d.db.getUserByEmail = func(context.Context, string) (*entity.User, error) {
			return verifiedUser(), nil
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

		if err := uc.PasswordForgot(context.Background(), PasswordForgotInput{
			Email: " Jane@Example.COM ",
		}); err != nil {
			t.Fatalf("PasswordForgot() error = %v", err)
		}

		if storedOTP.Purpose != entity.OTPPurposeResetPassword {
			t.Fatalf("stored purpose = %v, want reset password", storedOTP.Purpose)
		}
		if storedOTP.Target != "jane@example.com" {
			t.Fatalf("stored target = %q, want account email", storedOTP.Target)
		}
		if published.Recipient != "jane@example.com" || published.Code != testOTPCode {
			t.Fatalf("published event = %+v", published)
		}
	})

	t.Run("unknown email succeeds without issuing anything", func(t *testing.T) {
		d := newTestDeps()
		d.db.setOTP = func(context.Context, int64, entity.OTPState) error {
			t.Fatal("code stored for unknown email")
			return nil
		}
		uc := newTestUsecase(t, d)

		if err := uc.PasswordForgot(context.Background(), PasswordForgotInput{
			Email: "nobody@example.com",
		}); err != nil {
			t.Fatalf("PasswordForgot() error = %v", err)
		}
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		uc := newTestUsecase(t, newTestDeps())

		assertInvalidInput(t, uc.PasswordForgot(context.Background(), PasswordForgotInput{
			Email: "not-an-email",
		}))
	})
}
