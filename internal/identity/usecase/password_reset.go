package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danishfaisall/gokart/internal/pkg/goerror"
	"github.com/danishfaisall/gokart/internal/pkg/idempotency"
	"github.com/danishfaisall/gokart/internal/pkg/jwt"
)

type PasswordResetInput struct {
	ResetToken  string `validate:"required"`
	NewPassword string `validate:"required,password"`
}

// PasswordReset sets a new password using a reset token minted by OTPVerify.
// The token is single-use: its ID is tracked in redis for the token lifetime,
// so replaying it after a successful reset fails.
func (s *Usecase) PasswordReset(ctx context.Context, in PasswordResetInput) error {
	ctx, span := s.startSpan(ctx, "PasswordReset")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	claims, err := s.jwt.Verify(in.ResetToken)
	if err != nil {
		slog.WarnContext(ctx, "reset token failed to verify", "error", err)
		return goerror.NewBusiness("Invalid or expired reset token", goerror.CodeUnauthorized)
	}

	if claims.Scope != jwt.ScopePasswordReset {
		slog.WarnContext(ctx, "token is not a reset token", "user_id", claims.UserID)
		return goerror.NewBusiness("Invalid or expired reset token", goerror.CodeUnauthorized)
	}

	newHash, err := s.bcrypt.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash new password", "user_id", claims.UserID, "error", err)
		return goerror.NewServer(err)
	}

	ttl := s.cfg.GetMinute("modules.identity.reset_token_ttl_minutes")
	err = s.idemp.Exec(ctx, "password_reset:"+claims.ID, func(ctx context.Context) error {
		return s.repoDB.UpdatePassword(ctx, claims.UserID, string(newHash))
	}, idempotency.WithStateTTL(ttl))

	if errors.Is(err, idempotency.ErrAlreadyCompleted) ||
		errors.Is(err, idempotency.ErrAlreadyInProgress) ||
		errors.Is(err, idempotency.ErrAlreadyFailed) {
		slog.WarnContext(ctx, "reset token already used", "user_id", claims.UserID)
		return goerror.NewBusiness("Invalid or expired reset token", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to update user password", "user_id", claims.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
