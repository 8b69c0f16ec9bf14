package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danishfaisall/gokart/internal/catalog/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

type CategoryDetailInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) CategoryDetail(ctx context.Context, in CategoryDetailInput) (*entity.Category, error) {
	ctx, span := s.startSpan(ctx, "CategoryDetail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	category, err := s.repoDB.GetCategoryByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Category not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get category by id", "category_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return category, nil
}
