package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/danishfaisall/gokart/internal/catalog/entity"
)

const categoryColumns = `id, name, description, sort_order, is_active, created_at, updated_at`

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.SortOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *DB) GetCategories(ctx context.Context, includeInactive bool) ([]entity.Category, error) {
	ctx, span := s.startSpan(ctx, "GetCategories")
	var err error
	defer func() { s.endSpan(span, err) }()

	clause := " WHERE is_active = TRUE"
	if includeInactive {
		clause = ""
	}

	query := fmt.Sprintf("SELECT %s FROM categories%s ORDER BY sort_order ASC, name ASC", categoryColumns, clause)

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]entity.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}

	err = rows.Err()
	return categories, err
}

func (s *DB) GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error) {
	ctx, span := s.startSpan(ctx, "GetCategoryByID")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := fmt.Sprintf("SELECT %s FROM categories WHERE id = $1", categoryColumns)

	category, err := scanCategory(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return category, nil
}

func (s *DB) CreateCategory(ctx context.Context, in entity.Category) error {
	ctx, span := s.startSpan(ctx, "CreateCategory")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO categories (id, name, description, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = s.conn.Exec(ctx, query, in.ID, in.Name, in.Description, in.SortOrder, in.IsActive)
	err = s.mapError(err)
	return err
}

func (s *DB) UpdateCategory(ctx context.Context, in entity.Category) error {
	ctx, span := s.startSpan(ctx, "UpdateCategory")
	var err error
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE categories
		SET name = $2, description = $3, sort_order = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1`

	tag, err := s.conn.Exec(ctx, query, in.ID, in.Name, in.Description, in.SortOrder, in.IsActive)
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

// DeleteCategory removes a category. Products still referencing it trip the
// foreign key constraint and surface as a conflict.
func (s *DB) DeleteCategory(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "DeleteCategory")
	var err error
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
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
