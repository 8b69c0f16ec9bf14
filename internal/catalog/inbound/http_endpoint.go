package inbound

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/danishfaisall/gokart/internal/catalog/usecase"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
	"github.com/danishfaisall/gokart/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the product catalog.
type HTTPEndpoint struct {
	uc uc
}

// ProductList returns a filtered, paginated product page.
func (h *HTTPEndpoint) ProductList(r *router.Request) (any, error) {
	categoryID, err := r.GetQueryInt64("category_id")
	if err != nil {
		return nil, err
	}
	minPrice, err := r.GetQueryInt64("min_price")
	if err != nil {
		return nil, err
	}
	maxPrice, err := r.GetQueryInt64("max_price")
	if err != nil {
		return nil, err
	}
	limit, err := r.GetQueryInt32("limit")
	if err != nil {
		return nil, err
	}
	offset, err := r.GetQueryInt32("offset")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.ProductList(r.Context(), usecase.ProductListInput{
		Search:     r.GetQuery("search"),
		CategoryID: categoryID,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, err
	}

	return toProductListResponse(resp), nil
}

// ProductDetail returns a single product by id.
func (h *HTTPEndpoint) ProductDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.ProductDetail(r.Context(), usecase.ProductDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return toProductResponse(resp), nil
}

// ProductTopSelling returns the best selling products.
func (h *HTTPEndpoint) ProductTopSelling(r *router.Request) (any, error) {
	resp, err := h.uc.ProductTopSelling(r.Context())
	if err != nil {
		return nil, err
	}

	return toProductResponses(resp), nil
}

// ProductDiscounted returns products with an active discount.
func (h *HTTPEndpoint) ProductDiscounted(r *router.Request) (any, error) {
	resp, err := h.uc.ProductDiscounted(r.Context())
	if err != nil {
		return nil, err
	}

	return toProductResponses(resp), nil
}

// ProductCreate adds a product to the catalog.
func (h *HTTPEndpoint) ProductCreate(r *router.Request) (any, error) {
	var req ProductRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.ProductCreate(r.Context(), usecase.ProductCreateInput{
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		Stock:           req.Stock,
	})
	if err != nil {
		return nil, err
	}

	return &ProductCreateResponse{ID: resp.ID}, nil
}

// ProductUpdate replaces a product's editable fields.
func (h *HTTPEndpoint) ProductUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req ProductRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.ProductUpdate(r.Context(), usecase.ProductUpdateInput{
		ID:              id,
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		Stock:           req.Stock,
	})
}

// ProductImage replaces a product's image.
func (h *HTTPEndpoint) ProductImage(r *router.Request) (any, error) {
	ctx := r.Context()

	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	file, err := r.StreamSingleFile("image")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close file", "error", err)
		}
	}()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, goerror.NewInvalidFormat()
	}

	return nil, h.uc.ProductImage(ctx, usecase.ProductImageInput{
		ID:          id,
		File:        io.MultiReader(bytes.NewReader(head[:n]), file),
		ContentType: http.DetectContentType(head[:n]),
	})
}

// ProductDelete removes a product from the catalog.
func (h *HTTPEndpoint) ProductDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.ProductDelete(r.Context(), usecase.ProductDeleteInput{ID: id})
}

// CategoryList returns categories for the storefront navigation.
func (h *HTTPEndpoint) CategoryList(r *router.Request) (any, error) {
	resp, err := h.uc.CategoryList(r.Context(), usecase.CategoryListInput{
		IncludeInactive: r.GetQuery("include_inactive") == "true",
	})
	if err != nil {
		return nil, err
	}

	return toCategoryResponses(resp), nil
}

// CategoryDetail returns a single category by id.
func (h *HTTPEndpoint) CategoryDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.CategoryDetail(r.Context(), usecase.CategoryDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return toCategoryResponse(resp), nil
}

// CategoryCreate adds a category.
func (h *HTTPEndpoint) CategoryCreate(r *router.Request) (any, error) {
	var req CategoryRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.CategoryCreate(r.Context(), usecase.CategoryCreateInput{
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return nil, err
	}

	return &CategoryCreateResponse{ID: resp.ID}, nil
}

// CategoryUpdate replaces a category's editable fields.
func (h *HTTPEndpoint) CategoryUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req CategoryRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return nil, h.uc.CategoryUpdate(r.Context(), usecase.CategoryUpdateInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive,
	})
}

// CategoryDelete removes a category.
func (h *HTTPEndpoint) CategoryDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.CategoryDelete(r.Context(), usecase.CategoryDeleteInput{ID: id})
}
