package usecase

import (
	"context"
	"testing"

	"github.com/danishfaisall/gokart/internal/pkg/goerror"
	"github.com/danishfaisall/gokart/internal/pkg/idempotency"
	"github.com/danishfaisall/gokart/internal/pkg/jwt"
)

func resetClaims() jwt.Claims {
	c := jwt.Claims{
		UserID:    7,
		UserEmail: "jane@example.com",
		Scope:     jwt.ScopePasswordReset,
	}
	c.ID = "jti-1"
	return c
}

func TestPasswordReset(t *testing.T) {
	t.Run("success updates password under the token id", func(t *testing.T) {
		d := newTestDeps()
		d.jwt.verify = func(tokenStr string) (jwt.Claims, error) {
			if tokenStr != "reset-token" {
				t.Fatalf("verified token = %q", tokenStr)
			}
			return resetClaims(), nil
		}

		var gotKey string
		d.idemp.exec = func(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
			gotKey = key
			return fn(ctx)
		}

		var updatedID int64
		var updatedHash string
		d.db.updatePassword = func(_ context.Context, userID int64, hash string) error {
			updatedID = userID
			updatedHash = hash
			return nil
		}

		uc := newTestUsecase(t, d)

		err := uc.PasswordReset(context.Background(), PasswordResetInput{
			ResetToken:  "reset-token",
			NewPassword: "brand-new-pass",
		})
		if err != nil {
			t.Fatalf("PasswordReset() error = %v", err)
		}

		if gotKey != "password_reset:jti-1" {
			t.Fatalf("idempotency key = %q", gotKey)
		}
		if updatedID != 7 {
			t.Fatalf("updated user id = %d, want 7", updatedID)
		}
		if updatedHash != "hashed:brand-new-pass" {
			t.Fatalf("updated hash = %q", updatedHash)
		}
	})

	t.Run("bad token and wrong scope share one message", func(t *testing.T) {
		badVerify := newTestDeps()

		wrongScope := newTestDeps()
		wrongScope.jwt.verify = func(string) (jwt.Claims, error) {
			c := resetClaims()
			c.Scope = jwt.ScopeSession
			return c, nil
		}

		for name, d := range map[string]*testDeps{"verify failure": badVerify, "session scope": wrongScope} {
			t.Run(name, func(t *testing.T) {
				d.db.updatePassword = func(context.Context, int64, string) error {
					t.Fatal("password updated with invalid token")
					return nil
				}
				uc := newTestUsecase(t, d)

				err := uc.PasswordReset(context.Background(), PasswordResetInput{
					ResetToken:  "reset-token",
					NewPassword: "brand-new-pass",
				})

				assertBusinessError(t, err, "Invalid or expired reset token", goerror.CodeUnauthorized)
			})
		}
	})

	t.Run("replayed token reads as invalid", func(t *testing.T) {
		replays := map[string]error{
			"already completed":   idempotency.ErrAlreadyCompleted,
			"already in progress": idempotency.ErrAlreadyInProgress,
			"already failed":      idempotency.ErrAlreadyFailed,
		}

		for name, state := range replays {
			t.Run(name, func(t *testing.T) {
				d := newTestDeps()
				d.jwt.verify = func(string) (jwt.Claims, error) {
					return resetClaims(), nil
				}
				d.idemp.exec = func(context.Context, string, func(context.Context) error, ...idempotency.Option) error {
					return state
				}
				uc := newTestUsecase(t, d)

				err := uc.PasswordReset(context.Background(), PasswordResetInput{
					ResetToken:  "reset-token",
					NewPassword: "brand-new-pass",
				})

				assertBusinessError(t, err, "Invalid or expired reset token", goerror.CodeUnauthorized)
			})
		}
	})

	t.Run("weak new password rejected before verification", func(t *testing.T) {
		d := newTestDeps()
		d.jwt.verify = func(string) (jwt.Claims, error) {
			t.Fatal("token verified despite invalid input")
			return jwt.Claims{}, nil
		}
		uc := newTestUsecase(t, d)

		assertInvalidInput(t, uc.PasswordReset(context.Background(), PasswordResetInput{
			ResetToken:  "reset-token",
			NewPassword: "abc",
		}))
	})
}
