package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/danishfaisall/gokart/internal/catalog/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

type ProductCreateInput struct {
	CategoryID      int64  `validate:"required,gt=0"`
	Name            string `validate:"required,min=3,max=150"`
	Description     string `validate:"omitempty,max=5000"`
	Price           int64  `validate:"required,gt=0"`
	DiscountPercent int16  `validate:"omitempty,gte=0,lte=100"`
	Stock           int32  `validate:"omitempty,gte=0"`
}

type ProductCreateOutput struct {
	ID int64
}

func (s *Usecase) ProductCreate(ctx context.Context, in ProductCreateInput) (*ProductCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "ProductCreate")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	category, err := s.repoDB.GetCategoryByID(ctx, in.CategoryID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Category not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get category by id", "category_id", in.CategoryID, "error", err)
		return nil, goerror.NewServer(err)
	}

	product := entity.Product{
		ID:              s.uid.Generate(),
		CategoryID:      category.ID,
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		DiscountPercent: in.DiscountPercent,
		Stock:           in.Stock,
	}

	if err := s.repoDB.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("Product already exists", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create product", "name", product.Name, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProductCreateOutput{ID: product.ID}, nil
}
