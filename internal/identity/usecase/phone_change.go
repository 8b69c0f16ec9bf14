package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danishfaisall/gokart/internal/identity/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

type PhoneChangeRequestInput struct {
	Phone string `validate:"required,numeric,min=9,max=15"`
}

// PhoneChangeRequest issues a CHANGE_PHONE code for the authenticated user.
// The requested number is persisted with the code, so the number committed at
// verification is the one the code was issued for.
func (s *Usecase) PhoneChangeRequest(ctx context.Context, in PhoneChangeRequestInput) error {
	ctx, span := s.startSpan(ctx, "PhoneChangeRequest")
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

	return s.issueOTP(ctx, user, entity.OTPPurposeChangePhone, user.Email, in.Phone)
}

type PhoneChangeVerifyInput struct {
	Code string `validate:"required,len=6,number"`
}

// PhoneChangeVerify consumes a CHANGE_PHONE code and commits the phone number
// stored at issuance.
func (s *Usecase) PhoneChangeVerify(ctx context.Context, in PhoneChangeVerifyInput) error {
	ctx, span := s.startSpan(ctx, "PhoneChangeVerify")
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

	if err := user.OTP.Validate(in.Code, entity.OTPPurposeChangePhone, s.clock.Now()); err != nil {
		return s.mapOTPError(ctx, user.ID, err)
	}

	if err := s.repoDB.ConsumeOTPChangePhone(ctx, user.ID, user.OTP.Target); err != nil {
		slog.ErrorContext(ctx, "failed to repo consume phone change code", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
