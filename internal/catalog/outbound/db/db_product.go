package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/danishfaisall/gokart/internal/catalog/entity"
)

const productColumns = `id, category_id, name, description, price, discount_percent, stock, sold_count, image_url, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.DiscountPercent,
		&p.Stock, &p.SoldCount, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *DB) queryProducts(ctx context.Context, query string, args ...any) ([]entity.Product, error) {
	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}

	return products, rows.Err()
}

// GetProducts returns a page of products matching the filter plus the total
// match count. Search is a case insensitive substring match on the name or
// the description.
func (s *DB) GetProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, int64, error) {
	ctx, span := s.startSpan(ctx, "GetProducts")
	var err error
	defer func() { s.endSpan(span, err) }()

	where := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if filter.CategoryID > 0 {
		args = append(args, filter.CategoryID)
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.MinPrice > 0 {
		args = append(args, filter.MinPrice)
		where = append(where, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.MaxPrice > 0 {
		args = append(args, filter.MaxPrice)
		where = append(where, fmt.Sprintf("price <= $%d", len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	err = s.conn.QueryRow(ctx, "SELECT COUNT(*) FROM products"+clause, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit)
	limitArg := len(args)
	args = append(args, filter.Offset)
	offsetArg := len(args)

	query := fmt.Sprintf("SELECT %s FROM products%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		productColumns, clause, limitArg, offsetArg)

	products, err := s.queryProducts(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (s *DB) GetProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	ctx, span := s.startSpan(ctx, "GetProductByID")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := fmt.Sprintf("SELECT %s FROM products WHERE id = $1", productColumns)

	product, err := scanProduct(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return product, nil
}

func (s *DB) GetTopSellingProducts(ctx context.Context, limit int32) ([]entity.Product, error) {
	ctx, span := s.startSpan(ctx, "GetTopSellingProducts")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := fmt.Sprintf("SELECT %s FROM products WHERE sold_count > 0 ORDER BY sold_count DESC LIMIT $1", productColumns)

	products, err := s.queryProducts(ctx, query, limit)
	return products, err
}

func (s *DB) GetDiscountedProducts(ctx context.Context, limit int32) ([]entity.Product, error) {
	ctx, span := s.startSpan(ctx, "GetDiscountedProducts")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := fmt.Sprintf("SELECT %s FROM products WHERE discount_percent > 0 ORDER BY discount_percent DESC LIMIT $1", productColumns)

	products, err := s.queryProducts(ctx, query, limit)
	return products, err
}

func (s *DB) CreateProduct(ctx context.Context, in entity.Product) error {
	ctx, span := s.startSpan(ctx, "CreateProduct")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO products (id, category_id, name, description, price, discount_percent, stock, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = s.conn.Exec(ctx, query, in.ID, in.CategoryID, in.Name, in.Description,
		in.Price, in.DiscountPercent, in.Stock, in.ImageURL)
	err = s.mapError(err)
	return err
}

func (s *DB) UpdateProduct(ctx context.Context, in entity.Product) error {
	ctx, span := s.startSpan(ctx, "UpdateProduct")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE products
		SET category_id = $2, name = $3, description = $4, price = $5,
			discount_percent = $6, stock = $7, updated_at = NOW()
		WHERE id = $1`

	tag, err := s.conn.Exec(ctx, query, in.ID, in.CategoryID, in.Name, in.Description,
		in.Price, in.DiscountPercent, in.Stock)
	if err != nil {
		err = s.mapError(err)
		return err
	}
	if tag.RowsAffected() == 0 {
		err = pgx.ErrNoRows
		return s.mapError(err)
	}

	return nil
}

func (s *DB) UpdateProductImage(ctx context.Context, id int64, imageURL string) error {
	ctx, span := s.startSpan(ctx, "UpdateProductImage")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE products SET image_url = $2, updated_at = NOW() WHERE id = $1`

	tag, err := s.conn.Exec(ctx, query, id, imageURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = pgx.ErrNoRows
		return s.mapError(err)
	}

	return nil
}

func (s *DB) DeleteProduct(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "DeleteProduct")
	var err error
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = pgx.ErrNoRows
		return s.mapError(err)
	}

	return nil
}
