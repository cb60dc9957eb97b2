package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin creates the admin identity if none exists. The users_singleton
// index guarantees at most one row regardless of concurrent startups.
func EnsureAdmin(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration, username, password string) error {
	ctxCheck, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	row := pool.QueryRow(ctxCheck, "SELECT EXISTS(SELECT 1 FROM users)")
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return fmt.Errorf("check admin exists: %w", err)
	}
	if exists {
		return nil
	}

	if password == "" {
		return fmt.Errorf("no admin identity exists and ADMIN_PASSWORD is not set")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	ctxInsert, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if _, err := pool.Exec(ctxInsert, `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, username, string(hash)); err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	return nil
}
