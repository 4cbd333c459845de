package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/domain/shop"
)

const shopColumns = `id, name, subdomain, owner_id, active, description, whatsapp_number, theme, contact, created_at, updated_at`

func scanShop(row scannable) (shop.Shop, error) {
	var (
		sh          shop.Shop
		themeJSON   []byte
		contactJSON []byte
	)
	err := row.Scan(&sh.ID, &sh.Name, &sh.Subdomain, &sh.OwnerID, &sh.Active,
		&sh.Description, &sh.WhatsAppNumber, &themeJSON, &contactJSON,
		&sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		return shop.Shop{}, err
	}
	if err := json.Unmarshal(themeJSON, &sh.Theme); err != nil {
		return shop.Shop{}, fmt.Errorf("unmarshal shop theme: %w", err)
	}
	if err := json.Unmarshal(contactJSON, &sh.Contact); err != nil {
		return shop.Shop{}, fmt.Errorf("unmarshal shop contact: %w", err)
	}
	return sh, nil
}

func (s *Store) ListShops(ctx context.Context) ([]shop.Shop, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+shopColumns+` FROM shops ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	defer rows.Close()

	var shops []shop.Shop
	for rows.Next() {
		sh, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shop: %w", err)
		}
		shops = append(shops, sh)
	}
	return orEmpty(shops), rows.Err()
}

func (s *Store) GetShop(ctx context.Context, id domain.ID) (*shop.Shop, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+shopColumns+` FROM shops WHERE id = $1`, id)

	sh, err := scanShop(row)
	if err != nil {
		return nil, notFoundWrap(err, "get shop %d", id)
	}
	return &sh, nil
}

func (s *Store) GetShopBySubdomain(ctx context.Context, subdomain string) (*shop.Shop, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+shopColumns+` FROM shops WHERE subdomain = $1`, subdomain)

	sh, err := scanShop(row)
	if err != nil {
		return nil, notFoundWrap(err, "get shop by subdomain %s", subdomain)
	}
	return &sh, nil
}

func (s *Store) ShopIDsByOwner(ctx context.Context, ownerID domain.ID) ([]domain.ID, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id FROM shops WHERE owner_id = $1 ORDER BY id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("shops by owner: %w", err)
	}
	defer rows.Close()

	var ids []domain.ID
	for rows.Next() {
		var id domain.ID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan shop id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) CreateShop(ctx context.Context, sh *shop.Shop) error {
	now := time.Now().UTC()
	sh.CreatedAt = now
	sh.UpdatedAt = now

	themeJSON, err := json.Marshal(sh.Theme)
	if err != nil {
		return fmt.Errorf("marshal shop theme: %w", err)
	}
	contactJSON, err := json.Marshal(sh.Contact)
	if err != nil {
		return fmt.Errorf("marshal shop contact: %w", err)
	}

	err = s.pool.QueryRow(ctx, `
		INSERT INTO shops (name, subdomain, owner_id, active, description, whatsapp_number, theme, contact, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		sh.Name, sh.Subdomain, sh.OwnerID, sh.Active, sh.Description,
		sh.WhatsAppNumber, themeJSON, contactJSON, sh.CreatedAt, sh.UpdatedAt,
	).Scan(&sh.ID)
	if err != nil {
		if uniqueViolation(err) {
			return fmt.Errorf("create shop %q: %w", sh.Subdomain, domain.ErrConflict)
		}
		return fmt.Errorf("create shop: %w", err)
	}
	return nil
}

func (s *Store) UpdateShop(ctx context.Context, sh *shop.Shop) error {
	sh.UpdatedAt = time.Now().UTC()

	themeJSON, err := json.Marshal(sh.Theme)
	if err != nil {
		return fmt.Errorf("marshal shop theme: %w", err)
	}
	contactJSON, err := json.Marshal(sh.Contact)
	if err != nil {
		return fmt.Errorf("marshal shop contact: %w", err)
	}

	// The subdomain and owner are immutable and deliberately not updated.
	tag, err := s.pool.Exec(ctx, `
		UPDATE shops SET name = $2, active = $3, description = $4, whatsapp_number = $5, theme = $6, contact = $7, updated_at = $8
		WHERE id = $1`,
		sh.ID, sh.Name, sh.Active, sh.Description, sh.WhatsAppNumber,
		themeJSON, contactJSON, sh.UpdatedAt,
	)
	return execExpectOne(tag, err, "update shop %d", sh.ID)
}

func (s *Store) DeleteShop(ctx context.Context, id domain.ID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM shops WHERE id = $1`, id)
	return execExpectOne(tag, err, "delete shop %d", id)
}
