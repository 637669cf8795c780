package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/metrics"
)

// Sweeper periodically deletes baskets that have seen no activity for a number of days.
type Sweeper struct {
	basket   BasketService
	days     int
	interval time.Duration
}

func NewSweeper(basket BasketService, days int, interval time.Duration) *Sweeper {
	return &Sweeper{basket: basket, days: days, interval: interval}
}

// Run blocks until ctx is cancelled. A non-positive interval disables the sweep.
func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		slog.Info("Stale basket sweep disabled")
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Stale basket sweeper stopped")
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	deleted, err := s.basket.SweepStale(ctx, s.days)
	if err != nil {
		slog.Error("Stale basket sweep failed", slog.String("error", err.Error()))
		return
	}

	metrics.RecordSwept(deleted)
}
