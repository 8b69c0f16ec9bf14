package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/danishfaisall/gokart/internal/identity/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

type EmailChangeRequestInput struct {
	NewEmail string `validate:"required,email"`
}

// EmailChangeRequest issues a CHANGE_EMAIL code for the authenticated user.
// Uniqueness of the new email is checked at issuance, and the code is
// delivered to the new address to prove the caller controls it.
func (s *Usecase) EmailChangeRequest(ctx context.Context, in EmailChangeRequestInput) error {
	ctx, span := s.startSpan(ctx, "EmailChangeRequest")
	defer span.End()

	in.NewEmail = strings.TrimSpace(strings.ToLower(in.NewEmail))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	user, err := s.repoDB.GetUserByID(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "user_id", clm.UserID)
		return goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	if in.NewEmail == user.Email {
		return goerror.NewBusiness("Email is already in use", goerror.CodeConflict)
	}

	if _, err := s.repoDB.GetUserByEmail(ctx, in.NewEmail); err == nil {
		return goerror.NewBusiness("Email is already in use", goerror.CodeConflict)
	} else if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.NewEmail, "error", err)
		return goerror.NewServer(err)
	}

	return s.issueOTP(ctx, user, entity.OTPPurposeChangeEmail, in.NewEmail, in.NewEmail)
}

type EmailChangeVerifyInput struct {
	Code string `validate:"required,len=6,number"`
}

// EmailChangeVerify consumes a CHANGE_EMAIL code and commits the email stored
// at issuance. The verified flag is left untouched.
func (s *Usecase) EmailChangeVerify(ctx context.Context, in EmailChangeVerifyInput) error {
	ctx, span := s.startSpan(ctx, "EmailChangeVerify")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	user, err := s.repoDB.GetUserByID(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "user_id", clm.UserID)
		return goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	if err := user.OTP.Validate(in.Code, entity.OTPPurposeChangeEmail, s.clock.Now()); err != nil {
		return s.mapOTPError(ctx, user.ID, err)
	}

	if err := s.repoDB.ConsumeOTPChangeEmail(ctx, user.ID, user.OTP.Target); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("Email is already in use", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo consume email change code", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
