package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

type ProductUpdateInput struct {
	ID              int64  `validate:"required,gt=0"`
	CategoryID      int64  `validate:"required,gt=0"`
	Name            string `validate:"required,min=3,max=150"`
	Description     string `validate:"omitempty,max=5000"`
	Price           int64  `validate:"required,gt=0"`
	DiscountPercent int16  `validate:"omitempty,gte=0,lte=100"`
	Stock           int32  `validate:"omitempty,gte=0"`
}

func (s *Usecase) ProductUpdate(ctx context.Context, in ProductUpdateInput) error {
	ctx, span := s.startSpan(ctx, "ProductUpdate")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	product, err := s.repoDB.GetProductByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Product not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get product by id", "product_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	if in.CategoryID != product.CategoryID {
		if _, err := s.repoDB.GetCategoryByID(ctx, in.CategoryID); errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Category not found", goerror.CodeNotFound)
		} else if err != nil {
			slog.ErrorContext(ctx, "failed to repo get category by id", "category_id", in.CategoryID, "error", err)
			return goerror.NewServer(err)
		}
	}

	product.CategoryID = in.CategoryID
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.DiscountPercent = in.DiscountPercent
	product.Stock = in.Stock

	if err := s.repoDB.UpdateProduct(ctx, *product); err != nil {
		slog.ErrorContext(ctx, "failed to repo update product", "product_id", product.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
