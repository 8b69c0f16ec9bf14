package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

type CategoryUpdateInput struct {
	ID          int64  `validate:"required,gt=0"`
	Name        string `validate:"required,min=3,max=100"`
	Description string `validate:"omitempty,max=1000"`
	SortOrder   int32  `validate:"omitempty,gte=0"`
	IsActive    bool
}

func (s *Usecase) CategoryUpdate(ctx context.Context, in CategoryUpdateInput) error {
	ctx, span := s.startSpan(ctx, "CategoryUpdate")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	category, err := s.repoDB.GetCategoryByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Category not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get category by id", "category_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	category.Name = in.Name
	category.Description = in.Description
	category.SortOrder = in.SortOrder
	category.IsActive = in.IsActive

	if err := s.repoDB.UpdateCategory(ctx, *category); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("Category already exists", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo update category", "category_id", category.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
