package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/domain/product"
)

const productColumns = `id, shop_id, category_id, name, slug, description, price, sizes, colors, images, featured, active, created_at, updated_at`

func scanProduct(row scannable) (product.Product, error) {
	var (
		p          product.Product
		categoryID *domain.ID
	)
	err := row.Scan(&p.ID, &p.ShopID, &categoryID, &p.Name, &p.Slug,
		&p.Description, &p.Price, &p.Sizes, &p.Colors, &p.Images,
		&p.Featured, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return product.Product{}, err
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	return p, nil
}

// nullableID maps a zero ID to SQL NULL for optional foreign keys.
func nullableID(id domain.ID) any {
	if id.Zero() {
		return nil
	}
	return id
}

func (s *Store) ListProducts(ctx context.Context, f product.Filter) ([]product.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	var args []any

	if !f.ShopID.Zero() {
		args = append(args, f.ShopID)
		query += ` AND shop_id = $` + strconv.Itoa(len(args))
	}
	if !f.CategoryID.Zero() {
		args = append(args, f.CategoryID)
		query += ` AND category_id = $` + strconv.Itoa(len(args))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		query += ` AND featured = $` + strconv.Itoa(len(args))
	}
	if f.ActiveOnly {
		query += ` AND active`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return orEmpty(products), rows.Err()
}

func (s *Store) GetProduct(ctx context.Context, id domain.ID) (*product.Product, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err != nil {
		return nil, notFoundWrap(err, "get product %d", id)
	}
	return &p, nil
}

func (s *Store) GetProductBySlug(ctx context.Context, shopID domain.ID, slug string) (*product.Product, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE shop_id = $1 AND slug = $2`, shopID, slug)

	p, err := scanProduct(row)
	if err != nil {
		return nil, notFoundWrap(err, "get product %s", slug)
	}
	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p *product.Product) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	err := s.pool.QueryRow(ctx, `
		INSERT INTO products (shop_id, category_id, name, slug, description, price, sizes, colors, images, featured, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`,
		p.ShopID, nullableID(p.CategoryID), p.Name, p.Slug, p.Description, p.Price,
		pgTextArray(p.Sizes), pgTextArray(p.Colors), pgTextArray(p.Images),
		p.Featured, p.Active, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if uniqueViolation(err) {
			return fmt.Errorf("create product %q: %w", p.Slug, domain.ErrConflict)
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (s *Store) UpdateProduct(ctx context.Context, p *product.Product) error {
	p.UpdatedAt = time.Now().UTC()
	tag, err := s.pool.Exec(ctx, `
		UPDATE products SET category_id = $2, name = $3, description = $4, price = $5, sizes = $6, colors = $7, images = $8, featured = $9, active = $10, updated_at = $11
		WHERE id = $1`,
		p.ID, nullableID(p.CategoryID), p.Name, p.Description, p.Price,
		pgTextArray(p.Sizes), pgTextArray(p.Colors), pgTextArray(p.Images),
		p.Featured, p.Active, p.UpdatedAt,
	)
	return execExpectOne(tag, err, "update product %d", p.ID)
}

func (s *Store) DeleteProduct(ctx context.Context, id domain.ID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return execExpectOne(tag, err, "delete product %d", id)
}
