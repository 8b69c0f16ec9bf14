package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/danishfaisall/gokart/internal/catalog/entity"
	"github.com/danishfaisall/gokart/internal/pkg/clock"
	"github.com/danishfaisall/gokart/internal/pkg/config"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
	"github.com/danishfaisall/gokart/internal/pkg/instrument"
	"github.com/danishfaisall/gokart/internal/pkg/storage"
	"github.com/danishfaisall/gokart/internal/pkg/validator"
)

var testNow = time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)

type fakeRepoDB struct {
	getProducts           func(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, int64, error)
	getProductByID        func(ctx context.Context, id int64) (*entity.Product, error)
	getTopSellingProducts func(ctx context.Context, limit int32) ([]entity.Product, error)
	getDiscountedProducts func(ctx context.Context, limit int32) ([]entity.Product, error)
	createProduct         func(ctx context.Context, in entity.Product) error
	updateProduct         func(ctx context.Context, in entity.Product) error
	updateProductImage    func(ctx context.Context, id int64, imageURL string) error
	deleteProduct         func(ctx context.Context, id int64) error
	getCategories         func(ctx context.Context, includeInactive bool) ([]entity.Category, error)
	getCategoryByID       func(ctx context.Context, id int64) (*entity.Category, error)
	createCategory        func(ctx context.Context, in entity.Category) error
	updateCategory        func(ctx context.Context, in entity.Category) error
	deleteCategory        func(ctx context.Context, id int64) error
}

func (f *fakeRepoDB) GetProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, int64, error) {
	if f.getProducts == nil {
		return nil, 0, nil
	}
	return f.getProducts(ctx, filter)
}

func (f *fakeRepoDB) GetProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	if f.getProductByID == nil {
		return nil, goerror.ErrNotFound
	}
	return f.getProductByID(ctx, id)
}

func (f *fakeRepoDB) GetTopSellingProducts(ctx context.Context, limit int32) ([]entity.Product, error) {
	if f.getTopSellingProducts == nil {
		return nil, nil
	}
	return f.getTopSellingProducts(ctx, limit)
}

func (f *fakeRepoDB) GetDiscountedProducts(ctx context.Context, limit int32) ([]entity.Product, error) {
	if f.getDiscountedProducts == nil {
		return nil, nil
	}
	return f.getDiscountedProducts(ctx, limit)
}

func (f *fakeRepoDB) CreateProduct(ctx context.Context, in entity.Product) error {
	if f.createProduct == nil {
		return nil
	}
	return f.createProduct(ctx, in)
}

func (f *fakeRepoDB) UpdateProduct(ctx context.Context, in entity.Product) error {
	if f.updateProduct == nil {
		return nil
	}
	return f.updateProduct(ctx, in)
}

func (f *fakeRepoDB) UpdateProductImage(ctx context.Context, id int64, imageURL string) error {
	if f.updateProductImage == nil {
		return nil
	}
	return f.updateProductImage(ctx, id, imageURL)
}

func (f *fakeRepoDB) DeleteProduct(ctx context.Context, id int64) error {
	if f.deleteProduct == nil {
		return nil
	}
	return f.deleteProduct(ctx, id)
}

func (f *fakeRepoDB) GetCategories(ctx context.Context, includeInactive bool) ([]entity.Category, error) {
	if f.getCategories == nil {
		return nil, nil
	}
	return f.getCategories(ctx, includeInactive)
}

func (f *fakeRepoDB) GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error) {
	if f.getCategoryByID == nil {
		return nil, goerror.ErrNotFound
	}
	return f.getCategoryByID(ctx, id)
}

func (f *fakeRepoDB) CreateCategory(ctx context.Context, in entity.Category) error {
	if f.createCategory == nil {
		return nil
	}
	return f.createCategory(ctx, in)
}

func (f *fakeRepoDB) UpdateCategory(ctx context.Context, in entity.Category) error {
	if f.updateCategory == nil {
		return nil
	}
	return f.updateCategory(ctx, in)
}

func (f *fakeRepoDB) DeleteCategory(ctx context.Context, id int64) error {
	if f.deleteCategory == nil {
		return nil
	}
	return f.deleteCategory(ctx, id)
}

type stubStorage struct {
	storage.Storage

	putObject    func(ctx context.Context, bucket, key string, r io.Reader, opts storage.PutOptions) (storage.ObjectInfo, error)
	deleteObject func(ctx context.Context, bucket, key string) error
}

func (s *stubStorage) PutObject(ctx context.Context, bucket, key string, r io.Reader, opts storage.PutOptions) (storage.ObjectInfo, error) {
	if s.putObject == nil {
		return storage.ObjectInfo{Bucket: bucket, Key: key}, nil
	}
	return s.putObject(ctx, bucket, key, r, opts)
}

func (s *stubStorage) DeleteObject(ctx context.Context, bucket, key string) error {
	if s.deleteObject == nil {
		return nil
	}
	return s.deleteObject(ctx, bucket, key)
}

type stubConfig struct {
	config.Config

	strings map[string]string
	int64s  map[string]int64
}

func (s *stubConfig) GetString(key string) string {
	return s.strings[key]
}

func (s *stubConfig) GetInt64(key string) int64 {
	return s.int64s[key]
}

type stubNumberID int64

func (s stubNumberID) Generate() int64 { return int64(s) }

type stubStringID string

func (s stubStringID) Generate() string { return string(s) }

type testDeps struct {
	db      *fakeRepoDB
	storage *stubStorage
	cfg     *stubConfig
}

func newTestDeps() *testDeps {
	return &testDeps{
		db:      &fakeRepoDB{},
		storage: &stubStorage{},
		cfg: &stubConfig{
			strings: map[string]string{
				"modules.catalog.image_bucket":   "product-images",
				"modules.catalog.image_base_url": "https://cdn.example.com/products",
			},
			int64s: map[string]int64{
				"modules.catalog.image_max_size_bytes": 1 << 20,
			},
		},
	}
}

func newTestUsecase(t *testing.T, d *testDeps) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	return New(Dependency{
		RepoDB:     d.db,
		Validator:  v,
		Config:     d.cfg,
		Storage:    d.storage,
		UID:        stubNumberID(42),
		UUID:       stubStringID("uuid-1"),
		Clock:      clock.Func(func() time.Time { return testNow }),
		Instrument: instrument.NewNoop(),
	})
}

func sampleProduct() *entity.Product {
	return &entity.Product{
		ID:              42,
		CategoryID:      5,
		Name:            "Mechanical Keyboard",
		Description:     "Hot-swappable switches",
		Price:           1_250_000,
		DiscountPercent: 10,
		Stock:           30,
		SoldCount:       12,
	}
}

func sampleCategory() *entity.Category {
	return &entity.Category{
		ID:        5,
		Name:      "Peripherals",
		SortOrder: 1,
		IsActive:  true,
	}
}

func assertBusinessError(t *testing.T, err error, wantMsg string, wantCode goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error = %v, want *goerror.Error", err)
	}
	if gerr.Msg() != wantMsg {
		t.Fatalf("error message = %q, want %q", gerr.Msg(), wantMsg)
	}
	if gerr.Code() != wantCode {
		t.Fatalf("error code = %v, want %v", gerr.Code(), wantCode)
	}
}

func assertInvalidInput(t *testing.T, err error) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error = %v, want *goerror.Error", err)
	}
	if gerr.Code() != goerror.CodeInvalidInput {
		t.Fatalf("error code = %v, want %v", gerr.Code(), goerror.CodeInvalidInput)
	}
}
