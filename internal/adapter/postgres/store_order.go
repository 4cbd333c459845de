package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/domain/order"
)

const orderColumns = `id, shop_id, reference, customer_name, customer_phone, customer_address, items, total, status, payment_method, notes, created_at, updated_at`

func scanOrder(row scannable) (order.Order, error) {
	var (
		o         order.Order
		itemsJSON []byte
	)
	err := row.Scan(&o.ID, &o.ShopID, &o.Reference, &o.CustomerName,
		&o.CustomerPhone, &o.CustomerAddress, &itemsJSON, &o.Total,
		&o.Status, &o.PaymentMethod, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return order.Order{}, err
	}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return order.Order{}, fmt.Errorf("unmarshal order items: %w", err)
	}
	return o, nil
}

func (s *Store) ListOrders(ctx context.Context, f order.Filter) ([]order.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	var args []any

	if !f.ShopID.Zero() {
		args = append(args, f.ShopID)
		query += ` AND shop_id = $` + strconv.Itoa(len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orEmpty(orders), rows.Err()
}

func (s *Store) GetOrder(ctx context.Context, id domain.ID) (*order.Order, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	o, err := scanOrder(row)
	if err != nil {
		return nil, notFoundWrap(err, "get order %d", id)
	}
	return &o, nil
}

func (s *Store) GetOrderByReference(ctx context.Context, reference string) (*order.Order, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE reference = $1`, reference)

	o, err := scanOrder(row)
	if err != nil {
		return nil, notFoundWrap(err, "get order %s", reference)
	}
	return &o, nil
}

func (s *Store) CreateOrder(ctx context.Context, o *order.Order) error {
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now

	itemsJSON, err := json.Marshal(orEmpty(o.Items))
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}

	err = s.pool.QueryRow(ctx, `
		INSERT INTO orders (shop_id, reference, customer_name, customer_phone, customer_address, items, total, status, payment_method, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		o.ShopID, o.Reference, o.CustomerName, o.CustomerPhone, o.CustomerAddress,
		itemsJSON, o.Total, o.Status, o.PaymentMethod, o.Notes, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		if uniqueViolation(err) {
			return fmt.Errorf("create order %q: %w", o.Reference, domain.ErrConflict)
		}
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (s *Store) UpdateOrder(ctx context.Context, o *order.Order) error {
	o.UpdatedAt = time.Now().UTC()
	tag, err := s.pool.Exec(ctx, `
		UPDATE orders SET status = $2, notes = $3, updated_at = $4
		WHERE id = $1`,
		o.ID, o.Status, o.Notes, o.UpdatedAt,
	)
	return execExpectOne(tag, err, "update order %d", o.ID)
}

func (s *Store) DeleteOrder(ctx context.Context, id domain.ID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	return execExpectOne(tag, err, "delete order %d", id)
}
