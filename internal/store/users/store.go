package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("user not found")

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

type UserStore struct {
	pool *pgxpool.Pool
}

func (s *UserStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id serial PRIMARY KEY,
			username text NOT NULL UNIQUE,
			email text NOT NULL,
			password text NOT NULL,
			created_at timestamptz NOT NULL,
			updated_at timestamptz NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure users schema: %w", err)
	}
	return nil
}

func (s *UserStore) Insert(ctx context.Context, user NewUserModel) (int, error) {
	now := time.Now().UTC()

	var id int
	err := s.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, user.Username, user.Email, user.PasswordHash, now, now).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (s *UserStore) List(ctx context.Context) ([]UserInfo, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, username, email, created_at, updated_at
		FROM users
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []UserInfo{}
	for rows.Next() {
		var u UserInfo
		if err := rows.Scan(&u.Id, &u.Username, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (s *UserStore) GetById(ctx context.Context, id int) (UserInfo, error) {
	var u UserInfo
	err := s.pool.QueryRow(ctx, `
		SELECT id, username, email, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id).Scan(&u.Id, &u.Username, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return UserInfo{}, ErrNotFound
		}
		return UserInfo{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *UserStore) Update(ctx context.Context, id int, user UpdateUserModel) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE users
		SET username = $1, email = $2, password = $3, updated_at = $4
		WHERE id = $5
	`, user.Username, user.Email, user.PasswordHash, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserStore) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserStore) GetCredentials(ctx context.Context, username string) (Credentials, error) {
	var c Credentials
	err := s.pool.QueryRow(ctx, `
		SELECT id, password FROM users WHERE username = $1
	`, username).Scan(&c.Id, &c.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Credentials{}, ErrNotFound
		}
		return Credentials{}, fmt.Errorf("get credentials: %w", err)
	}
	return c, nil
}
