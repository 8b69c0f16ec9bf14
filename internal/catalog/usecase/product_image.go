package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/danishfaisall/gokart/internal/pkg/goerror"
	"github.com/danishfaisall/gokart/internal/pkg/storage"
)

//nolint:gochecknoglobals // global for fast reuse
var imageContentTypeExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var errImageTooLarge = errors.New("image exceeds max size")

type ProductImageInput struct {
	ID          int64
	File        io.Reader
	ContentType string
}

// ProductImage uploads a product image to object storage and stores its URL.
func (s *Usecase) ProductImage(ctx context.Context, in ProductImageInput) error {
	ctx, span := s.startSpan(ctx, "ProductImage")
	defer span.End()

	if in.ID <= 0 {
		return goerror.NewInvalidInput(nil, "id", "id must be a positive integer")
	}

	if in.File == nil {
		return goerror.NewInvalidInput(nil, "image", "image file is required")
	}

	contentType := strings.ToLower(strings.TrimSpace(in.ContentType))
	ext, ok := imageContentTypeExt[contentType]
	if !ok {
		return goerror.NewInvalidInput(nil, "image", "unsupported image content type")
	}

	product, err := s.repoDB.GetProductByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Product not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get product by id", "product_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	bucket := strings.TrimSpace(s.cfg.GetString("modules.catalog.image_bucket"))
	baseURL := strings.TrimSpace(s.cfg.GetString("modules.catalog.image_base_url"))
	key := fmt.Sprintf("%d/%s%s", product.ID, s.uuid.Generate(), ext)
	maxSize := s.cfg.GetInt64("modules.catalog.image_max_size_bytes")

	reader := io.LimitReader(in.File, maxSize+1)
	info, err := s.storage.PutObject(ctx, bucket, key, reader, storage.PutOptions{
		Size:        -1,
		ContentType: contentType,
		Metadata:    map[string]string{"product_id": strconv.FormatInt(product.ID, 10)},
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to upload product image", "product_id", product.ID, "error", err)
		return goerror.NewServer(err)
	}
	if info.Size > maxSize {
		if err := s.storage.DeleteObject(ctx, bucket, key); err != nil {
			slog.WarnContext(ctx, "failed to delete oversized product image", "key", key, "error", err)
		}
		return goerror.NewInvalidInput(errImageTooLarge)
	}

	imageURL := baseURL + "/" + key
	if err := s.repoDB.UpdateProductImage(ctx, product.ID, imageURL); err != nil {
		slog.ErrorContext(ctx, "failed to update product image", "product_id", product.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
