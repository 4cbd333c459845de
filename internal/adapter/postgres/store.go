package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/policy"
)

// Store implements database.Store and policy.Store using PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new Store backed by the given connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// entityTables maps scoped content types to the table and shop reference
// column the policy engine resolves ownership through. Shops resolve to
// themselves, so they are deliberately absent.
var entityTables = map[policy.ContentType]struct {
	table   string
	shopCol string
}{
	policy.TypeProduct:  {"products", "shop_id"},
	policy.TypeCategory: {"categories", "shop_id"},
	policy.TypeOrder:    {"orders", "shop_id"},
}

// EntityShopID returns the owning shop of the given entity.
func (s *Store) EntityShopID(ctx context.Context, ct policy.ContentType, id domain.ID) (domain.ID, error) {
	t, ok := entityTables[ct]
	if !ok {
		return 0, fmt.Errorf("no shop relation for content type %q: %w", ct, domain.ErrValidation)
	}

	var shopID domain.ID
	err := s.pool.QueryRow(ctx,
		`SELECT `+t.shopCol+` FROM `+t.table+` WHERE id = $1`, id,
	).Scan(&shopID)
	if err != nil {
		return 0, notFoundWrap(err, "entity shop for %s %d", ct, id)
	}
	return shopID, nil
}
