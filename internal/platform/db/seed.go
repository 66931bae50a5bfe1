package db

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"slipgen/internal/domain/auth"
	"slipgen/internal/platform/config"
)

// Seed ensures a default owner account exists so a fresh install is usable
// immediately. It is idempotent and skipped entirely when no seed email is
// configured.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	email := strings.TrimSpace(cfg.SeedOwnerEmail)
	if email == "" {
		return nil
	}

	var existing string
	err := pool.QueryRow(ctx, "SELECT id FROM owners WHERE email = $1", email).Scan(&existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(cfg.SeedOwnerPassword)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO owners (id, email, display_name, parent_mode, password_hash)
    VALUES ($1, $2, $3, false, $4)
  `, uuid.NewString(), email, "Default Owner", hash)
	return err
}
