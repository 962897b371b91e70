// Package jobs runs the periodic background refresh against the spreadsheet
// backend so the local store tracks edits made outside this service.
package jobs

import (
	"context"
	"log/slog"
	"time"
)

type RefreshFunc func(ctx context.Context) error

type Service struct {
	interval time.Duration
	refresh  RefreshFunc
}

func New(interval time.Duration, refresh RefreshFunc) *Service {
	return &Service{interval: interval, refresh: refresh}
}

// Start launches the refresh loop. A zero interval or nil refresh disables
// it. The loop stops when ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	if s == nil || s.interval <= 0 || s.refresh == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.refresh(ctx); err != nil {
					slog.Warn("spreadsheet refresh failed", "err", err)
				}
			}
		}
	}()
}
