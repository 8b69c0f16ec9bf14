package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/danishfaisall/gokart/internal/identity/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

func TestRegister(t *testing.T) {
	t.Run("success creates user and issues code", func(t *testing.T) {
		d := newTestDeps()

		var created entity.NewUser
		d.db.createUser = func(_ context.Context, user entity.NewUser) error {
			created = user
			return nil
		}

		var storedOTP entity.OTPState
		d.db.setOTP = func(_ context.Context, userID int64, otp entity.OTPState) error {
			if userID != 99 {
				t.Fatalf("SetOTP user id = %d, want 99", userID)
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

		err := uc.Register(context.Background(), RegisterInput{
			Email:    " Jane@Example.com ",
			Password: "secret-pass",
			FullName: "Jane Smith",
			Phone:    "628111222333",
		})
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}

		if created.Email != "jane@example.com" {
			t.Fatalf("created email = %q, want normalized lowercase", created.Email)
		}
		if created.Password != "hashed:secret-pass" {
			t.Fatalf("created password = %q, want hashed", created.Password)
		}
		if created.Role != entity.RoleUser {
			t.Fatalf("created role = %v, want user", created.Role)
		}

		if storedOTP.Code != testOTPCode {
			t.Fatalf("stored code = %q, want %q", storedOTP.Code, testOTPCode)
		}
		if storedOTP.Purpose != entity.OTPPurposeRegister {
			t.Fatalf("stored purpose = %v, want register", storedOTP.Purpose)
		}
		if storedOTP.Target != "jane@example.com" {
			t.Fatalf("stored target = %q, want email", storedOTP.Target)
		}
		if !storedOTP.ExpiresAt.Equal(testNow.Add(10 * time.Minute)) {
			t.Fatalf("stored expiry = %v, want now+10m", storedOTP.ExpiresAt)
		}

		if published.Recipient != "jane@example.com" || published.Code != testOTPCode {
			t.Fatalf("published event = %+v", published)
		}
	})

	t.Run("verified email conflicts", func(t *testing.T) {
		d := newTestDeps()
		d.db.getUserByEmail = func(context.Context, string) (*entity.User, error) {
			return verifiedUser(), nil
		}
		uc := newTestUsecase(t, d)

		err := uc.Register(context.Background(), RegisterInput{
			Email:    "jane@example.com",
			Password: "secret-pass",
			FullName: "Jane Smith",
		})

		assertBusinessError(t, err, "Email already registered", goerror.CodeConflict)
	})

	t.Run("unverified email conflicts with its own message", func(t *testing.T) {
		d := newTestDeps()
		d.db.getUserByEmail = func(context.Context, string) (*entity.User, error) {
			u := verifiedUser()
			u.IsVerified = false
			return u, nil
		}
		uc := newTestUsecase(t, d)

		err := uc.Register(context.Background(), RegisterInput{
			Email:    "jane@example.com",
			Password: "secret-pass",
			FullName: "Jane Smith",
		})

		assertBusinessError(t, err, "Account not verified", goerror.CodeConflict)
	})

	t.Run("create race maps unique violation to conflict", func(t *testing.T) {
		d := newTestDeps()
		d.db.createUser = func(context.Context, entity.NewUser) error {
			return goerror.ErrConflict
		}
		uc := newTestUsecase(t, d)

		err := uc.Register(context.Background(), RegisterInput{
			Email:    "jane@example.com",
			Password: "secret-pass",
			FullName: "Jane Smith",
		})

		assertBusinessError(t, err, "Email already registered", goerror.CodeConflict)
	})

	t.Run("publish failure does not fail registration", func(t *testing.T) {
		d := newTestDeps()
		d.msg.publishOTPIssued = func(context.Context, OTPIssuedEvent) error {
			return context.DeadlineExceeded
		}
		uc := newTestUsecase(t, d)

		err := uc.Register(context.Background(), RegisterInput{
			Email:    "jane@example.com",
			Password: "secret-pass",
			FullName: "Jane Smith",
		})
		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}
	})

	t.Run("invalid input rejected", func(t *testing.T) {
		tests := []struct {
			name string
			in   RegisterInput
		}{
			{"bad email", RegisterInput{Email: "not-an-email", Password: "secret-pass", FullName: "Jane Smith"}},
			{"short password", RegisterInput{Email: "jane@example.com", Password: "abc", FullName: "Jane Smith"}},
			{"short name", RegisterInput{Email: "jane@example.com", Password: "secret-pass", FullName: "Jo"}},
			{"numeric name", RegisterInput{Email: "jane@example.com", Password: "secret-pass", FullName: "Jane 1234"}},
			{"bad phone", RegisterInput{Email: "jane@example.com", Password: "secret-pass", FullName: "Jane Smith", Phone: "abc"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := newTestUsecase(t, newTestDeps())
				assertInvalidInput(t, uc.Register(context.Background(), tt.in))
			})
		}
	})
}
