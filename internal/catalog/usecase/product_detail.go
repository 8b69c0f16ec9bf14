package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danishfaisall/gokart/internal/catalog/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

type ProductDetailInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) ProductDetail(ctx context.Context, in ProductDetailInput) (*entity.Product, error) {
	ctx, span := s.startSpan(ctx, "ProductDetail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	product, err := s.repoDB.GetProductByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Product not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get product by id", "product_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return product, nil
}
