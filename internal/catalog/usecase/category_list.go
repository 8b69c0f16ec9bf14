package usecase

import (
	"context"
	"log/slog"

	"github.com/danishfaisall/gokart/internal/catalog/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

type CategoryListInput struct {
	IncludeInactive bool
}

// CategoryList returns categories ordered by sort order then name. Inactive
// categories are hidden unless requested.
func (s *Usecase) CategoryList(ctx context.Context, in CategoryListInput) ([]entity.Category, error) {
	ctx, span := s.startSpan(ctx, "CategoryList")
	defer span.End()

	categories, err := s.repoDB.GetCategories(ctx, in.IncludeInactive)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get categories", "error", err)
		return nil, goerror.NewServer(err)
	}

	return categories, nil
}
