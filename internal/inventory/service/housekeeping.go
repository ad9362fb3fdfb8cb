package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/homeledger/inventory/internal/inventory/store"
)

// DefaultInviteRetention is how long expired or consumed invites are kept
// for the admins' invite list before being purged.
const DefaultInviteRetention = 30 * 24 * time.Hour

// HousekeepingService periodically purges stale invites.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration

	// Now defaults to time.Now.
	Now func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService returns a worker that runs every interval. Zero or
// negative values fall back to one hour and DefaultInviteRetention.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	if retention <= 0 {
		retention = DefaultInviteRetention
	}

	return &HousekeepingService{
		Store:     st,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		Now:       time.Now,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started",
		"interval", s.Interval,
		"retention", s.Retention,
	)
}

// Stop blocks until an in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup deletes invites that expired, or single-use invites that were
// redeemed, more than Retention ago.
func (s *HousekeepingService) Cleanup(ctx context.Context) {
	cutoff := s.Now().UTC().Add(-s.Retention)

	n, err := s.Store.Invites().DeleteStaleInvites(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to delete stale invites", "error", err)
		return
	}
	s.Logger.Info("housekeeping cleanup completed",
		"invites_deleted", n,
		"cutoff", cutoff,
	)
}
