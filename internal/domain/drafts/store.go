package drafts

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrDraftNotFound = errors.New("draft not found")

// Store is a per-owner key-value table for in-progress payslip drafts. The
// calculation code never touches it; the enclosing application decides when
// to load and save, and expiry is handled by the background pruning job.
type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Get(ctx context.Context, ownerID, key string) ([]byte, error) {
	var payload []byte
	err := s.DB.QueryRow(ctx, `
    SELECT payload FROM payslip_drafts WHERE owner_id = $1 AND key = $2
  `, ownerID, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *Store) Put(ctx context.Context, ownerID, key string, payload []byte) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO payslip_drafts (owner_id, key, payload, updated_at)
    VALUES ($1, $2, $3, now())
    ON CONFLICT (owner_id, key)
    DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
  `, ownerID, key, payload)
	return err
}

func (s *Store) Delete(ctx context.Context, ownerID, key string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM payslip_drafts WHERE owner_id = $1 AND key = $2", ownerID, key)
	return err
}

func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.DB.Exec(ctx, "DELETE FROM payslip_drafts WHERE updated_at < $1", cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
