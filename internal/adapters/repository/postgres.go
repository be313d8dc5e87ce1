// internal/adapters/repository/postgres.go
package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/mahabubulhasibshawon/foodadmin/internal/ports"
)

// DSN builds a lib/pq connection string.
func DSN(host, port, user, password, name string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, name)
}

func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func InitDB(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS admin_session (
		key VARCHAR(255) PRIMARY KEY,
		token TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	if err != nil {
		return fmt.Errorf("init admin_session: %w", err)
	}
	return nil
}

// TokenRepository keeps the session token in one admin_session row.
type TokenRepository struct {
	db  *sql.DB
	key string
}

func NewTokenRepository(db *sql.DB, key string) *TokenRepository {
	return &TokenRepository{db: db, key: key}
}

var _ ports.TokenStorePort = (*TokenRepository)(nil)

func (r *TokenRepository) Load(ctx context.Context) (string, error) {
	var token string
	err := r.db.QueryRowContext(ctx, "SELECT token FROM admin_session WHERE key = $1", r.key).Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (r *TokenRepository) Save(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO admin_session (key, token, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET token = EXCLUDED.token, updated_at = NOW()
	`, r.key, token)
	return err
}

func (r *TokenRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM admin_session WHERE key = $1", r.key)
	return err
}
