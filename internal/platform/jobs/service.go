package jobs

import (
	"context"
	"log/slog"
	"time"
)

// Pruner is anything with periodic cleanup work; the drafts service
// implements it for the 24h retention policy.
type Pruner interface {
	Prune(ctx context.Context) (int64, error)
}

// Service runs background maintenance on a fixed interval. Work runs
// immediately at startup and then on each tick until ctx is done.
type Service struct {
	pruner   Pruner
	interval time.Duration
}

func New(pruner Pruner, interval time.Duration) *Service {
	return &Service{pruner: pruner, interval: interval}
}

func (s *Service) Start(ctx context.Context) {
	if s.interval <= 0 {
		return
	}
	go s.loop(ctx)
}

func (s *Service) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Service) runOnce(ctx context.Context) {
	pruned, err := s.pruner.Prune(ctx)
	if err != nil {
		slog.Warn("draft prune failed", "err", err)
		return
	}
	if pruned > 0 {
		slog.Info("pruned expired drafts", "count", pruned)
	}
}
