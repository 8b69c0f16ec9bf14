package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/danishfaisall/gokart/internal/catalog/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

type CategoryCreateInput struct {
	Name        string `validate:"required,min=3,max=100"`
	Description string `validate:"omitempty,max=1000"`
	SortOrder   int32  `validate:"omitempty,gte=0"`
	IsActive    bool
}

type CategoryCreateOutput struct {
	ID int64
}

func (s *Usecase) CategoryCreate(ctx context.Context, in CategoryCreateInput) (*CategoryCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "CategoryCreate")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	category := entity.Category{
		ID:          s.uid.Generate(),
		Name:        in.Name,
		Description: in.Description,
		SortOrder:   in.SortOrder,
		IsActive:    in.IsActive,
	}

	if err := s.repoDB.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("Category already exists", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create category", "name", category.Name, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CategoryCreateOutput{ID: category.ID}, nil
}
