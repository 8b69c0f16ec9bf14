package usecase

import (
	"context"
	"testing"

	"github.com/danishfaisall/gokart/internal/catalog/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
)

func TestCategoryList(t *testing.T) {
	tests := []struct {
		name            string
		includeInactive bool
	}{
		{"active only", false},
		{"include inactive", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps()
			d.db.getCategories = func(_ context.Context, includeInactive bool) ([]entity.Category, error) {
				if includeInactive != tt.includeInactive {
					t.Fatalf("includeInactive = %v, want %v", includeInactive, tt.includeInactive)
				}
				return []entity.Category{*sampleCategory()}, nil
			}
			uc := newTestUsecase(t, d)

			categories, err := uc.CategoryList(context.Background(), CategoryListInput{
				IncludeInactive: tt.includeInactive,
			})
			if err != nil {
				t.Fatalf("CategoryList() error = %v", err)
			}
			if len(categories) != 1 {
				t.Fatalf("categories = %d, want 1", len(categories))
			}
		})
	}
}

func TestCategoryDetail(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := newTestDeps()
		d.db.getCategoryByID = func(_ context.Context, id int64) (*entity.Category, error) {
			if id != 5 {
				t.Fatalf("lookup id = %d, want 5", id)
			}
			return sampleCategory(), nil
		}
		uc := newTestUsecase(t, d)

		category, err := uc.CategoryDetail(context.Background(), CategoryDetailInput{ID: 5})
		if err != nil {
			t.Fatalf("CategoryDetail() error = %v", err)
		}
		if category.Name != "Peripherals" {
			t.Fatalf("category = %+v", category)
		}
	})

	t.Run("missing category rejected", func(t *testing.T) {
		uc := newTestUsecase(t, newTestDeps())

		_, err := uc.CategoryDetail(context.Background(), CategoryDetailInput{ID: 999})

		assertBusinessError(t, err, "Category not found", goerror.CodeNotFound)
	})
}

func TestCategoryCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := newTestDeps()

		var created entity.Category
		d.db.createCategory = func(_ context.Context, in entity.Category) error {
			created = in
			return nil
		}
		uc := newTestUsecase(t, d)

		out, err := uc.CategoryCreate(context.Background(), CategoryCreateInput{
			Name:      " Peripherals ",
			SortOrder: 1,
			IsActive:  true,
		})
		if err != nil {
			t.Fatalf("CategoryCreate() error = %v", err)
		}

		if out.ID != 42 {
			t.Fatalf("output id = %d, want generated 42", out.ID)
		}
		if created.Name != "Peripherals" {
			t.Fatalf("created name = %q, want trimmed", created.Name)
		}
		if !created.IsActive {
			t.Fatal("created category inactive")
		}
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		d := newTestDeps()
		d.db.createCategory = func(context.Context, entity.Category) error {
			return goerror.ErrConflict
		}
		uc := newTestUsecase(t, d)

		_, err := uc.CategoryCreate(context.Background(), CategoryCreateInput{Name: "Peripherals"})

		assertBusinessError(t, err, "Category already exists", goerror.CodeConflict)
	})

	t.Run("short name rejected", func(t *testing.T) {
		uc := newTestUsecase(t, newTestDeps())

		_, err := uc.CategoryCreate(context.Background(), CategoryCreateInput{Name: "ab"})

		assertInvalidInput(t, err)
	})
}

func TestCategoryUpdate(t *testing.T) {
	t.Run("success overwrites fields", func(t *testing.T) {
		d := newTestDeps()
		d.db.getCategoryByID = func(context.Context, int64) (*entity.Category, error) {
			return sampleCategory(), nil
		}

		var updated entity.Category
		d.db.updateCategory = func(_ context.Context, in entity.Category) error {
			updated = in
			return nil
		}
		uc := newTestUsecase(t, d)

		err := uc.CategoryUpdate(context.Background(), CategoryUpdateInput{
			ID:        5,
			Name:      "Accessories",
			SortOrder: 2,
			IsActive:  false,
		})
		if err != nil {
			t.Fatalf("CategoryUpdate() error = %v", err)
		}

		if updated.Name != "Accessories" || updated.SortOrder != 2 || updated.IsActive {
			t.Fatalf("updated category = %+v", updated)
		}
	})

	t.Run("missing category rejected", func(t *testing.T) {
		uc := newTestUsecase(t, newTestDeps())

		err := uc.CategoryUpdate(context.Background(), CategoryUpdateInput{ID: 999, Name: "Accessories"})

		assertBusinessError(t, err, "Category not found", goerror.CodeNotFound)
	})

	t.Run("renaming onto an existing name conflicts", func(t *testing.T) {
		d := newTestDeps()
		d.db.getCategoryByID = func(context.Context, int64) (*entity.Category, error) {
			return sampleCategory(), nil
		}
		d.db.updateCategory = func(context.Context, entity.Category) error {
			return goerror.ErrConflict
		}
		uc := newTestUsecase(t, d)

		err := uc.CategoryUpdate(context.Background(), CategoryUpdateInput{ID: 5, Name: "Accessories"})

		assertBusinessError(t, err, "Category already exists", goerror.CodeConflict)
	})
}

func TestCategoryDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := newTestDeps()

		var deletedID int64
		d.db.deleteCategory = func(_ context.Context, id int64) error {
			deletedID = id
			return nil
		}
		uc := newTestUsecase(t, d)

		if err := uc.CategoryDelete(context.Background(), CategoryDeleteInput{ID: 5}); err != nil {
			t.Fatalf("CategoryDelete() error = %v", err)
		}
		if deletedID != 5 {
			t.Fatalf("deleted id = %d, want 5", deletedID)
		}
	})

	t.Run("category with products conflicts", func(t *testing.T) {
		d := newTestDeps()
		d.db.deleteCategory = func(context.Context, int64) error {
			return goerror.ErrConflict
		}
		uc := newTestUsecase(t, d)

		err := uc.CategoryDelete(context.Background(), CategoryDeleteInput{ID: 5})

		assertBusinessError(t, err, "Category still has products", goerror.CodeConflict)
	})

	t.Run("missing category rejected", func(t *testing.T) {
		d := newTestDeps()
		d.db.deleteCategory = func(context.Context, int64) error {
			return goerror.ErrNotFound
		}
		uc := newTestUsecase(t, d)

		err := uc.CategoryDelete(context.Background(), CategoryDeleteInput{ID: 999})

		assertBusinessError(t, err, "Category not found", goerror.CodeNotFound)
	})
}
