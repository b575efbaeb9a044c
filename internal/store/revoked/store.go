package revoked

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRevokedStore(pool *pgxpool.Pool) *RevokedStore {
	return &RevokedStore{pool: pool}
}

type RevokedStore struct {
	pool *pgxpool.Pool
}

func (s *RevokedStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS revoked_tokens (
			token text PRIMARY KEY,
			created_at timestamptz NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure revoked_tokens schema: %w", err)
	}
	return nil
}

func (s *RevokedStore) Insert(ctx context.Context, token string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO revoked_tokens (token, created_at)
		VALUES ($1, $2)
		ON CONFLICT (token) DO NOTHING
	`, token, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert revoked token: %w", err)
	}
	return nil
}

func (s *RevokedStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token = $1)
	`, token).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return exists, nil
}
