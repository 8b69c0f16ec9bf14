package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/danishfaisall/gokart/internal/identity/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
	"github.com/danishfaisall/gokart/internal/pkg/jwt"
)

type OTPVerifyInput struct {
	Email   string `validate:"required,email"`
	Code    string `validate:"required,len=6,number"`
	Purpose string `validate:"required,oneof=REGISTER RESET_PASSWORD"`
}

type OTPVerifyOutput struct {
	AccessToken string
	ResetToken  string
	User        *entity.User
}

// OTPVerify consumes an outstanding code on the unauthenticated paths. A
// valid REGISTER code marks the account verified and opens a session; a
// valid RESET_PASSWORD code mints a short-lived reset token that authorizes
// exactly one subsequent password set.
func (s *Usecase) OTPVerify(ctx context.Context, in OTPVerifyInput) (*OTPVerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "OTPVerify")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}
	purpose := entity.OTPPurposeFromString(in.Purpose)

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "verification attempted for unavailable user", "email", in.Email)
		return nil, goerror.NewBusiness("Invalid verification code", goerror.CodeInvalidInput)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := user.OTP.Validate(in.Code, purpose, s.clock.Now()); err != nil {
		return nil, s.mapOTPError(ctx, user.ID, err)
	}

	switch purpose {
	case entity.OTPPurposeRegister:
		if err := s.repoDB.ConsumeOTPRegister(ctx, user.ID); err != nil {
			slog.ErrorContext(ctx, "failed to repo consume registration code", "user_id", user.ID, "error", err)
			return nil, goerror.NewServer(err)
		}

		token, err := s.jwt.Generate(user.ID, user.Email, user.Role.String())
		if err != nil {
			slog.ErrorContext(ctx, "failed to generate access jwt token", "user_id", user.ID, "error", err)
			return nil, goerror.NewServer(err)
		}

		user.IsVerified = true
		user.OTP = nil

		return &OTPVerifyOutput{AccessToken: token, User: user}, nil

	case entity.OTPPurposeResetPassword:
		if err := s.repoDB.ConsumeOTP(ctx, user.ID); err != nil {
			slog.ErrorContext(ctx, "failed to repo consume reset code", "user_id", user.ID, "error", err)
			return nil, goerror.NewServer(err)
		}

		ttl := s.cfg.GetMinute("modules.identity.reset_token_ttl_minutes")
		token, err := s.jwt.GenerateScoped(user.ID, user.Email, jwt.ScopePasswordReset, ttl)
		if err != nil {
			slog.ErrorContext(ctx, "failed to generate reset jwt token", "user_id", user.ID, "error", err)
			return nil, goerror.NewServer(err)
		}

		return &OTPVerifyOutput{ResetToken: token}, nil

	default:
		return nil, goerror.NewBusiness("Invalid verification code", goerror.CodeInvalidInput)
	}
}
