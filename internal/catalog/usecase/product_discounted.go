package usecase

import (
	"context"
	"log/slog"

	"github.com/danishfaisall/gokart/internal/catalog/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

// ProductDiscounted returns products with an active discount, best discount
// first.
func (s *Usecase) ProductDiscounted(ctx context.Context) ([]entity.Product, error) {
	ctx, span := s.startSpan(ctx, "ProductDiscounted")
	defer span.End()

	products, err := s.repoDB.GetDiscountedProducts(ctx, defaultListLimit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get discounted products", "error", err)
		return nil, goerror.NewServer(err)
	}

	return products, nil
}
