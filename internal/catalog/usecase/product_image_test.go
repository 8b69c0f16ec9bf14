package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/danishfaisall/gokart/internal/catalog/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
	"github.com/danishfaisall/gokart/internal/pkg/storage"
)

func TestProductImage(t *testing.T) {
	t.Run("uploads under the product prefix and stores the url", func(t *testing.T) {
		d := newTestDeps()
		d.db.getProductByID = func(context.Context, int64) (*entity.Product, error) {
			return sampleProduct(), nil
		}

		var putKey string
		d.storage.putObject = func(_ context.Context, bucket, key string, r io.Reader, opts storage.PutOptions) (storage.ObjectInfo, error) {
			if bucket != "product-images" {
				t.Fatalf("bucket = %q", bucket)
			}
			if opts.ContentType != "image/jpeg" {
				t.Fatalf("content type = %q", opts.ContentType)
			}
			putKey = key
			n, err := io.Copy(io.Discard, r)
			if err != nil {
				t.Fatalf("drain upload: %v", err)
			}
			return storage.ObjectInfo{Bucket: bucket, Key: key, Size: n}, nil
		}

		var storedURL string
		d.db.updateProductImage = func(_ context.Context, id int64, imageURL string) error {
			if id != 42 {
				t.Fatalf("update id = %d, want 42", id)
			}
			storedURL = imageURL
			return nil
		}

		uc := newTestUsecase(t, d)

		err := uc.ProductImage(context.Background(), ProductImageInput{
			ID:          42,
			File:        strings.NewReader("jpeg-bytes"),
			ContentType: "image/jpeg",
		})
		if err != nil {
			t.Fatalf("ProductImage() error = %v", err)
		}

		if putKey != "42/uuid-1.jpg" {
			t.Fatalf("object key = %q", putKey)
		}
		if storedURL != "https://cdn.example.com/products/42/uuid-1.jpg" {
			t.Fatalf("stored url = %q", storedURL)
		}
	})

	t.Run("oversized upload is deleted from storage", func(t *testing.T) {
		d := newTestDeps()
		d.cfg.int64s["modules.catalog.image_max_size_bytes"] = 4
		d.db.getProductByID = func(context.Context, int64) (*entity.Product, error) {
			return sampleProduct(), nil
		}
		d.storage.putObject = func(_ context.Context, bucket, key string, r io.Reader, _ storage.PutOptions) (storage.ObjectInfo, error) {
			n, err := io.Copy(io.Discard, r)
			if err != nil {
				t.Fatalf("drain upload: %v", err)
			}
			return storage.ObjectInfo{Bucket: bucket, Key: key, Size: n}, nil
		}

		var deletedKey string
		d.storage.deleteObject = func(_ context.Context, _, key string) error {
			deletedKey = key
			return nil
		}
		d.db.updateProductImage = func(context.Context, int64, string) error {
			t.Fatal("image stored despite oversized upload")
			return nil
		}

		uc := newTestUsecase(t, d)

		err := uc.ProductImage(context.Background(), ProductImageInput{
			ID:          42,
			File:        strings.NewReader("way too many bytes"),
			ContentType: "image/jpeg",
		})

		assertInvalidInput(t, err)

		if deletedKey != "42/uuid-1.jpg" {
			t.Fatalf("deleted key = %q, want uploaded object", deletedKey)
		}
	})

	t.Run("unsupported content type rejected", func(t *testing.T) {
		uc := newTestUsecase(t, newTestDeps())

		err := uc.ProductImage(context.Background(), ProductImageInput{
			ID:          42,
			File:        strings.NewReader("gif-bytes"),
			ContentType: "image/gif",
		})

		assertInvalidInput(t, err)
	})

	t.Run("missing product rejected", func(t *testing.T) {
		uc := newTestUsecase(t, newTestDeps())

		err := uc.ProductImage(context.Background(), ProductImageInput{
			ID:          999,
			File:        strings.NewReader("jpeg-bytes"),
			ContentType: "image/jpeg",
		})

		assertBusinessError(t, err, "Product not found", goerror.CodeNotFound)
	})

	t.Run("missing file rejected", func(t *testing.T) {
		uc := newTestUsecase(t, newTestDeps())

		assertInvalidInput(t, uc.ProductImage(context.Background(), ProductImageInput{
			ID:          42,
			ContentType: "image/jpeg",
		}))
	})
}
