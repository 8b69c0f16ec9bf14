package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

type ProfileUpdateInput struct {
	FullName string `validate:"required,min=5,max=100,alphaspace"`
}

func (s *Usecase) ProfileUpdate(ctx context.Context, in ProfileUpdateInput) error {
	ctx, span := s.startSpan(ctx, "ProfileUpdate")
	defer span.End()

	in.FullName = strings.TrimSpace(in.FullName)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.repoDB.UpdateProfile(ctx, clm.UserID, in.FullName); err != nil {
		slog.ErrorContext(ctx, "failed to update user profile", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
