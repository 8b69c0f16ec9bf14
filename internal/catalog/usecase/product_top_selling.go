package usecase

import (
	"context"
	"log/slog"

	"github.com/danishfaisall/gokart/internal/catalog/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

const topSellingLimit = 10

// ProductTopSelling returns the products with the highest sold count.
func (s *Usecase) ProductTopSelling(ctx context.Context) ([]entity.Product, error) {
	ctx, span := s.startSpan(ctx, "ProductTopSelling")
	defer span.End()

	products, err := s.repoDB.GetTopSellingProducts(ctx, topSellingLimit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get top selling products", "error", err)
		return nil, goerror.NewServer(err)
	}

	return products, nil
}
