package profiles

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("child profile not found")

// ChildProfile is a named profile a parent-mode account can attribute
// payslips to when teaching children about pay.
type ChildProfile struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context, ownerID string) ([]ChildProfile, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, owner_id, name, created_at
    FROM child_profiles
    WHERE owner_id = $1
    ORDER BY created_at
  `, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []ChildProfile
	for rows.Next() {
		var p ChildProfile
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.CreatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (s *Store) Create(ctx context.Context, ownerID, name string) (ChildProfile, error) {
	profile := ChildProfile{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Name:    name,
	}
	err := s.DB.QueryRow(ctx, `
    INSERT INTO child_profiles (id, owner_id, name)
    VALUES ($1, $2, $3)
    RETURNING created_at
  `, profile.ID, ownerID, name).Scan(&profile.CreatedAt)
	if err != nil {
		return ChildProfile{}, err
	}
	return profile, nil
}

func (s *Store) Delete(ctx context.Context, ownerID, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM child_profiles WHERE owner_id = $1 AND id = $2", ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}
