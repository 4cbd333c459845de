package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/domain/category"
)

const categoryColumns = `id, shop_id, name, slug, created_at, updated_at`

func scanCategory(row scannable) (category.Category, error) {
	var c category.Category
	err := row.Scan(&c.ID, &c.ShopID, &c.Name, &c.Slug, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (s *Store) ListCategories(ctx context.Context, shopID domain.ID) ([]category.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	var args []any
	if !shopID.Zero() {
		query += ` WHERE shop_id = $1`
		args = append(args, shopID)
	}
	query += ` ORDER BY name`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []category.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return orEmpty(categories), rows.Err()
}

func (s *Store) GetCategory(ctx context.Context, id domain.ID) (*category.Category, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)

	c, err := scanCategory(row)
	if err != nil {
		return nil, notFoundWrap(err, "get category %d", id)
	}
	return &c, nil
}

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	err := s.pool.QueryRow(ctx, `
		INSERT INTO categories (shop_id, name, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		c.ShopID, c.Name, c.Slug, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if uniqueViolation(err) {
			return fmt.Errorf("create category %q: %w", c.Slug, domain.ErrConflict)
		}
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, c *category.Category) error {
	c.UpdatedAt = time.Now().UTC()
	tag, err := s.pool.Exec(ctx, `
		UPDATE categories SET name = $2, slug = $3, updated_at = $4
		WHERE id = $1`,
		c.ID, c.Name, c.Slug, c.UpdatedAt,
	)
	return execExpectOne(tag, err, "update category %d", c.ID)
}

func (s *Store) DeleteCategory(ctx context.Context, id domain.ID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return execExpectOne(tag, err, "delete category %d", id)
}
