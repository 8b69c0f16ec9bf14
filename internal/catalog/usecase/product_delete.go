package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

type ProductDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) ProductDelete(ctx context.Context, in ProductDeleteInput) error {
	ctx, span := s.startSpan(ctx, "ProductDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.repoDB.DeleteProduct(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Product not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete product", "product_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
