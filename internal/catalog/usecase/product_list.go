package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/danishfaisall/gokart/internal/catalog/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type ProductListInput struct {
	Search     string `validate:"omitempty,max=100"`
	CategoryID int64  `validate:"omitempty,gt=0"`
	MinPrice   int64  `validate:"omitempty,gte=0"`
	MaxPrice   int64  `validate:"omitempty,gte=0"`
	Limit      int32  `validate:"omitempty,gte=0"`
	Offset     int32  `validate:"omitempty,gte=0"`
}

type ProductListOutput struct {
	Products []entity.Product
	Total    int64
	Limit    int32
	Offset   int32
}

// ProductList returns products newest first, filtered by substring search,
// category and price range.
func (s *Usecase) ProductList(ctx context.Context, in ProductListInput) (*ProductListOutput, error) {
	ctx, span := s.startSpan(ctx, "ProductList")
	defer span.End()

	in.Search = strings.TrimSpace(in.Search)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.MinPrice > 0 && in.MaxPrice > 0 && in.MinPrice > in.MaxPrice {
		return nil, goerror.NewInvalidInput(nil, "min_price", "min_price must not exceed max_price")
	}

	if in.Limit <= 0 {
		in.Limit = defaultListLimit
	}
	if in.Limit > maxListLimit {
		in.Limit = maxListLimit
	}

	products, total, err := s.repoDB.GetProducts(ctx, entity.ProductFilter{
		Search:     in.Search,
		CategoryID: in.CategoryID,
		MinPrice:   in.MinPrice,
		MaxPrice:   in.MaxPrice,
		Limit:      in.Limit,
		Offset:     in.Offset,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get products", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProductListOutput{
		Products: products,
		Total:    total,
		Limit:    in.Limit,
		Offset:   in.Offset,
	}, nil
}
