package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

type CategoryDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) CategoryDelete(ctx context.Context, in CategoryDeleteInput) error {
	ctx, span := s.startSpan(ctx, "CategoryDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.repoDB.DeleteCategory(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Category not found", goerror.CodeNotFound)
	}
	if errors.Is(err, goerror.ErrConflict) {
		return goerror.NewBusiness("Category still has products", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete category", "category_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
