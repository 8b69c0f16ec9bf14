package inbound

import (
	"context"

	"github.com/casbin/casbin/v3"

	"github.com/danishfaisall/gokart/internal/catalog/entity"
	"github.com/danishfaisall/gokart/internal/catalog/usecase"
	"github.com/danishfaisall/gokart/internal/pkg/router"
)

type uc interface {
	ProductList(ctx context.Context, in usecase.ProductListInput) (*usecase.ProductListOutput, error)
	ProductDetail(ctx context.Context, in usecase.ProductDetailInput) (*entity.Product, error)
	ProductTopSelling(ctx context.Context) ([]entity.Product, error)
	ProductDiscounted(ctx context.Context) ([]entity.Product, error)

	ProductCreate(ctx context.Context, in usecase.ProductCreateInput) (*usecase.ProductCreateOutput, error)
	ProductUpdate(ctx context.Context, in usecase.ProductUpdateInput) error
	ProductImage(ctx context.Context, in usecase.ProductImageInput) error
	ProductDelete(ctx context.Context, in usecase.ProductDeleteInput) error

	CategoryList(ctx context.Context, in usecase.CategoryListInput) ([]entity.Category, error)
	CategoryDetail(ctx context.Context, in usecase.CategoryDetailInput) (*entity.Category, error)
	CategoryCreate(ctx context.Context, in usecase.CategoryCreateInput) (*usecase.CategoryCreateOutput, error)
	CategoryUpdate(ctx context.Context, in usecase.CategoryUpdateInput) error
	CategoryDelete(ctx context.Context, in usecase.CategoryDeleteInput) error
}

// RegisterHTTPEndpoint wires the catalog routes. Read endpoints are public,
// write endpoints require the catalog write permission.
func RegisterHTTPEndpoint(r *router.Router, uc uc, enforcer *casbin.Enforcer) {
	end := &HTTPEndpoint{uc: uc}
	manage := router.Authorize(enforcer, "catalog", "write")

	// Storefront
	r.GET("/api/v1/catalog/products", end.ProductList)
	r.GET("/api/v1/catalog/products/top-selling", end.ProductTopSelling)
	r.GET("/api/v1/catalog/products/discounted", end.ProductDiscounted)
	r.GET("/api/v1/catalog/products/detail/:id", end.ProductDetail)
	r.GET("/api/v1/catalog/categories", end.CategoryList)
	r.GET("/api/v1/catalog/categories/detail/:id", end.CategoryDetail)

	// Management (need catalog write permission)
	r.POST("/api/v1/catalog/products", end.ProductCreate, manage)
	r.PUT("/api/v1/catalog/products/detail/:id", end.ProductUpdate, manage)
	r.PUT("/api/v1/catalog/products/detail/:id/image", end.ProductImage, manage)
	r.DELETE("/api/v1/catalog/products/detail/:id", end.ProductDelete, manage)
	r.POST("/api/v1/catalog/categories", end.CategoryCreate, manage)
	r.PUT("/api/v1/catalog/categories/detail/:id", end.CategoryUpdate, manage)
	r.DELETE("/api/v1/catalog/categories/detail/:id", end.CategoryDelete, manage)
}
