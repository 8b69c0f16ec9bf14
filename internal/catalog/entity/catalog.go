package entity

import "time"

type Product struct {
	ID              int64
	CategoryID      int64
	Name            string
	Description     string
	Price           int64 // minor currency units
	DiscountPercent int16
	Stock           int32
	SoldCount       int64
	ImageURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FinalPrice applies the discount, rounding down.
func (p Product) FinalPrice() int64 {
	if p.DiscountPercent <= 0 {
		return p.Price
	}

	return p.Price - p.Price*int64(p.DiscountPercent)/100
}

type Category struct {
	ID          int64
	Name        string
	Description string
	SortOrder   int32
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProductFilter struct {
	Search     string
	CategoryID int64
	MinPrice   int64
	MaxPrice   int64
	Limit      int32
	Offset     int32
}
