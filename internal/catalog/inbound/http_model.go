package inbound

import (
	"github.com/danishfaisall/gokart/internal/catalog/entity"
	"github.com/danishfaisall/gokart/internal/catalog/usecase"
)

type ProductRequest struct {
	CategoryID      int64  `json:"category_id,string"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Price           int64  `json:"price"`
	DiscountPercent int16  `json:"discount_percent,omitempty"`
	Stock           int32  `json:"stock,omitempty"`
}

type ProductCreateResponse struct {
	ID int64 `json:"id,string"`
}

func (ProductCreateResponse) Message() string {
	return "Product has been created"
}

type ProductResponse struct {
	ID              int64  `json:"id,string"`
	CategoryID      int64  `json:"category_id,string"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Price           int64  `json:"price"`
	DiscountPercent int16  `json:"discount_percent"`
	FinalPrice      int64  `json:"final_price"`
	Stock           int32  `json:"stock"`
	SoldCount       int64  `json:"sold_count"`
	ImageURL        string `json:"image_url,omitempty"`
}

func toProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		CategoryID:      p.CategoryID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		DiscountPercent: p.DiscountPercent,
		FinalPrice:      p.FinalPrice(),
		Stock:           p.Stock,
		SoldCount:       p.SoldCount,
		ImageURL:        p.ImageURL,
	}
}

func toProductResponses(products []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`

	total  int64
	limit  int32
	offset int32
}

func (r ProductListResponse) Meta() map[string]any {
	return map[string]any{
		"total":  r.total,
		"limit":  r.limit,
		"offset": r.offset,
	}
}

func toProductListResponse(out *usecase.ProductListOutput) ProductListResponse {
	return ProductListResponse{
		Products: toProductResponses(out.Products),
		total:    out.Total,
		limit:    out.Limit,
		offset:   out.Offset,
	}
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SortOrder   int32  `json:"sort_order,omitempty"`
	IsActive    bool   `json:"is_active"`
}

type CategoryCreateResponse struct {
	ID int64 `json:"id,string"`
}

func (CategoryCreateResponse) Message() string {
	return "Category has been created"
}

type CategoryResponse struct {
	ID          int64  `json:"id,string"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SortOrder   int32  `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

func toCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
	}
}

func toCategoryResponses(categories []entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	return out
}
