package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/brandini/brandini/internal/domain"
	"github.com/brandini/brandini/internal/domain/user"
)

func (s *Store) CreateRefreshToken(ctx context.Context, rt *user.RefreshToken) error {
	rt.CreatedAt = time.Now().UTC()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		rt.ID, rt.UserID, rt.TokenHash, rt.ExpiresAt, rt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create refresh token: %w", err)
	}
	return nil
}

// RotateRefreshToken atomically consumes the old token and stores its
// replacement. A row-level lock prevents two concurrent refreshes from both
// succeeding with the same token. Returns the consumed token.
func (s *Store) RotateRefreshToken(ctx context.Context, oldHash string, next *user.RefreshToken) (*user.RefreshToken, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin rotation: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		SELECT id, user_id, token_hash, expires_at, created_at
		FROM refresh_tokens WHERE token_hash = $1 FOR UPDATE`, oldHash)

	var old user.RefreshToken
	if err := row.Scan(&old.ID, &old.UserID, &old.TokenHash, &old.ExpiresAt, &old.CreatedAt); err != nil {
		return nil, notFoundWrap(err, "get refresh token")
	}

	if time.Now().After(old.ExpiresAt) {
		// Consume the expired token so it cannot be retried.
		if _, err := tx.Exec(ctx, `DELETE FROM refresh_tokens WHERE id = $1`, old.ID); err != nil {
			return nil, fmt.Errorf("delete expired refresh token: %w", err)
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("commit rotation: %w", err)
		}
		return nil, fmt.Errorf("refresh token expired: %w", domain.ErrNotFound)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM refresh_tokens WHERE id = $1`, old.ID); err != nil {
		return nil, fmt.Errorf("delete refresh token: %w", err)
	}

	next.UserID = old.UserID
	next.CreatedAt = time.Now().UTC()
	if _, err := tx.Exec(ctx, `
		INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		next.ID, next.UserID, next.TokenHash, next.ExpiresAt, next.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("store rotated refresh token: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit rotation: %w", err)
	}
	return &old, nil
}

func (s *Store) DeleteRefreshToken(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}

func (s *Store) DeleteRefreshTokensByUser(ctx context.Context, userID domain.ID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete refresh tokens for user %d: %w", userID, err)
	}
	return nil
}

func (s *Store) DeleteExpiredRefreshTokens(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("delete expired refresh tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
