package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type Owner struct {
	ID           string
	Email        string
	DisplayName  string
	ParentMode   bool
	PasswordHash string
}

func (s *Store) FindOwnerByEmail(ctx context.Context, email string) (Owner, error) {
	var owner Owner
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, display_name, parent_mode, password_hash
    FROM owners
    WHERE email = $1
  `, email).Scan(&owner.ID, &owner.Email, &owner.DisplayName, &owner.ParentMode, &owner.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return Owner{}, ErrInvalidCredentials
	}
	return owner, err
}

func (s *Store) UpdateLastLogin(ctx context.Context, ownerID string) error {
	_, err := s.DB.Exec(ctx, "UPDATE owners SET last_login_at = now() WHERE id = $1", ownerID)
	return err
}

func (s *Store) SetParentMode(ctx context.Context, ownerID string, enabled bool) error {
	_, err := s.DB.Exec(ctx, "UPDATE owners SET parent_mode = $2 WHERE id = $1", ownerID, enabled)
	return err
}
