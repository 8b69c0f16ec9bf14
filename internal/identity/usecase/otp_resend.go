package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/danishfaisall/gokart/internal/identity/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

type OTPResendInput struct {
	Email   string `validate:"required,email"`
	Purpose string `validate:"required,oneof=REGISTER RESET_PASSWORD"`
}

// OTPResend issues a fresh code for an unauthenticated flow. The response is
// identical whether or not the email is registered, so the endpoint does not
// confirm account existence.
func (s *Usecase) OTPResend(ctx context.Context, in OTPResendInput) error {
	ctx, span := s.startSpan(ctx, "OTPResend")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}
	purpose := entity.OTPPurposeFromString(in.Purpose)

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "email not registered for resend", "email", in.Email)
		return nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if purpose == entity.OTPPurposeRegister && user.IsVerified {
		slog.WarnContext(ctx, "resend requested for verified user", "user_id", user.ID)
		return nil
	}

	return s.issueOTP(ctx, user, purpose, user.Email, user.Email)
}
