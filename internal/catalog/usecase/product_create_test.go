package usecase

import (
	"context"
	"testing"

	"github.com/danishfaisall/gokart/internal/catalog/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

func TestProductCreate(t *testing.T) {
	t.Run("success creates under existing category", func(t *testing.T) {
		d := newTestDeps()
		d.db.getCategoryByID = func(_ context.Context, id int64) (*entity.Category, error) {
			if id != 5 {
				t.Fatalf("category lookup id = %d, want 5", id)
			}
			return sampleCategory(), nil
		}

		var created entity.Product
		d.db.createProduct = func(_ context.Context, in entity.Product) error {
			created = in
			return nil
		}
		uc := newTestUsecase(t, d)

		out, err := uc.ProductCreate(context.Background(), ProductCreateInput{
			CategoryID:      5,
			Name:            " Mechanical Keyboard ",
			Price:           1_250_000,
			DiscountPercent: 10,
			Stock:           30,
		})
		if err != nil {
			t.Fatalf("ProductCreate() error = %v", err)
		}

		if out.ID != 42 {
			t.Fatalf("output id = %d, want generated 42", out.ID)
		}
		if created.Name != "Mechanical Keyboard" {
			t.Fatalf("created name = %q, want trimmed", created.Name)
		}
		if created.CategoryID != 5 || created.Price != 1_250_000 {
			t.Fatalf("created product = %+v", created)
		}
	})

	t.Run("missing category rejected", func(t *testing.T) {
		d := newTestDeps()
		d.db.createProduct = func(context.Context, entity.Product) error {
			t.Fatal("product created under missing category")
			return nil
		}
		uc := newTestUsecase(t, d)

		_, err := uc.ProductCreate(context.Background(), ProductCreateInput{
			CategoryID: 999,
			Name:       "Mechanical Keyboard",
			Price:      1_250_000,
		})

		assertBusinessError(t, err, "Category not found", goerror.CodeNotFound)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		d := newTestDeps()
		d.db.getCategoryByID = func(context.Context, int64) (*entity.Category, error) {
			return sampleCategory(), nil
		}
		d.db.createProduct = func(context.Context, entity.Product) error {
			return goerror.ErrConflict
		}
		uc := newTestUsecase(t, d)

		_, err := uc.ProductCreate(context.Background(), ProductCreateInput{
			CategoryID: 5,
			Name:       "Mechanical Keyboard",
			Price:      1_250_000,
		})

		assertBusinessError(t, err, "Product already exists", goerror.CodeConflict)
	})

	t.Run("invalid input rejected", func(t *testing.T) {
		tests := []struct {
			name string
			in   ProductCreateInput
		}{
			{"missing category", ProductCreateInput{Name: "Mechanical Keyboard", Price: 1000}},
			{"short name", ProductCreateInput{CategoryID: 5, Name: "ab", Price: 1000}},
			{"zero price", ProductCreateInput{CategoryID: 5, Name: "Mechanical Keyboard"}},
			{"discount above hundred", ProductCreateInput{CategoryID: 5, Name: "Mechanical Keyboard", Price: 1000, DiscountPercent: 101}},
			{"negative stock", ProductCreateInput{CategoryID: 5, Name: "Mechanical Keyboard", Price: 1000, Stock: -1}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := newTestUsecase(t, newTestDeps())

				_, err := uc.ProductCreate(context.Background(), tt.in)

				assertInvalidInput(t, err)
			})
		}
	})
}

func TestProductUpdate(t *testing.T) {
	t.Run("category change is verified", func(t *testing.T) {
		d := newTestDeps()
		d.db.getProductByID = func(context.Context, int64) (*entity.Product, error) {
			return sampleProduct(), nil
		}
		d.db.updateProduct = func(context.Context, entity.Product) error {
			t.Fatal("product updated with missing category")
			return nil
		}
		uc := newTestUsecase(t, d)

		err := uc.ProductUpdate(context.Background(), ProductUpdateInput{
			ID:         42,
			CategoryID: 999,
			Name:       "Mechanical Keyboard",
			Price:      1_250_000,
		})

		assertBusinessError(t, err, "Category not found", goerror.CodeNotFound)
	})

	t.Run("same category skips the lookup", func(t *testing.T) {
		d := newTestDeps()
		d.db.getProductByID = func(context.Context, int64) (*entity.Product, error) {
			return sampleProduct(), nil
		}
		d.db.getCategoryByID = func(context.Context, int64) (*entity.Category, error) {
			t.Fatal("category looked up for unchanged category id")
			return nil, nil
		}

		var updated entity.Product
		d.db.updateProduct = func(_ context.Context, in entity.Product) error {
			updated = in
			return nil
		}
		uc := newTestUsecase(t, d)

		err := uc.ProductUpdate(context.Background(), ProductUpdateInput{
			ID:         42,
			CategoryID: 5,
			Name:       "Wireless Keyboard",
			Price:      900_000,
		})
		if err != nil {
			t.Fatalf("ProductUpdate() error = %v", err)
		}

		if updated.Name != "Wireless Keyboard" || updated.Price != 900_000 {
			t.Fatalf("updated product = %+v", updated)
		}
		if updated.SoldCount != 12 {
			t.Fatalf("sold count = %d, want carried over", updated.SoldCount)
		}
	})

	t.Run("missing product rejected", func(t *testing.T) {
		uc := newTestUsecase(t, newTestDeps())

		err := uc.ProductUpdate(context.Background(), ProductUpdateInput{
			ID:         999,
			CategoryID: 5,
			Name:       "Mechanical Keyboard",
			Price:      1_250_000,
		})

		assertBusinessError(t, err, "Product not found", goerror.CodeNotFound)
	})
}

func TestProductDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := newTestDeps()

		var deletedID int64
		d.db.deleteProduct = func(_ context.Context, id int64) error {
			deletedID = id
			return nil
		}
		uc := newTestUsecase(t, d)

		if err := uc.ProductDelete(context.Background(), ProductDeleteInput{ID: 42}); err != nil {
			t.Fatalf("ProductDelete() error = %v", err)
		}
		if deletedID != 42 {
			t.Fatalf("deleted id = %d, want 42", deletedID)
		}
	})

	t.Run("missing product rejected", func(t *testing.T) {
		d := newTestDeps()
		d.db.deleteProduct = func(context.Context, int64) error {
			return goerror.ErrNotFound
		}
		uc := newTestUsecase(t, d)

		err := uc.ProductDelete(context.Background(), ProductDeleteInput{ID: 999})

		assertBusinessError(t, err, "Product not found", goerror.CodeNotFound)
	})
}
