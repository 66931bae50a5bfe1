package drafts

import (
	"context"
	"time"

	"slipgen/internal/platform/secrets"
)

// StoreAPI is the draft persistence port.
type StoreAPI interface {
	Get(ctx context.Context, ownerID, key string) ([]byte, error)
	Put(ctx context.Context, ownerID, key string, payload []byte) error
	Delete(ctx context.Context, ownerID, key string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service applies the retention policy and optional at-rest encryption on
// top of the raw key-value store. Draft payloads carry salary figures, so
// they get the same treatment as any other personal data.
type Service struct {
	store  StoreAPI
	cipher *secrets.Cipher
	ttl    time.Duration
}

func NewService(store StoreAPI, cipher *secrets.Cipher, ttl time.Duration) *Service {
	return &Service{store: store, cipher: cipher, ttl: ttl}
}

func (s *Service) Load(ctx context.Context, ownerID, key string) ([]byte, error) {
	payload, err := s.store.Get(ctx, ownerID, key)
	if err != nil {
		return nil, err
	}
	return s.cipher.Open(payload)
}

func (s *Service) Save(ctx context.Context, ownerID, key string, payload []byte) error {
	sealed, err := s.cipher.Seal(payload)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, ownerID, key, sealed)
}

func (s *Service) Discard(ctx context.Context, ownerID, key string) error {
	return s.store.Delete(ctx, ownerID, key)
}

// Prune drops drafts older than the configured retention window.
func (s *Service) Prune(ctx context.Context) (int64, error) {
	if s.ttl <= 0 {
		return 0, nil
	}
	return s.store.DeleteOlderThan(ctx, time.Now().Add(-s.ttl))
}
