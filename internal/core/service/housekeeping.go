package service

import (
	"context"
	"log/slog"
	"time"
)

// HousekeepingService periodically sweeps expiring collections so records
// past retention go away even when nobody lists them.
type HousekeepingService struct {
	Collections []*Collection
	Logger      *slog.Logger
	Interval    time.Duration
	Metrics     Recorder

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates the worker. Collections that never expire
// are skipped. If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(
	collections []*Collection,
	logger *slog.Logger,
	interval time.Duration,
	metrics Recorder,
) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	expiring := make([]*Collection, 0, len(collections))
	for _, c := range collections {
		if c.Kind.Expires() {
			expiring = append(expiring, c)
		}
	}

	return &HousekeepingService{
		Collections: expiring,
		Logger:      logger,
		Interval:    interval,
		Metrics:     recorderOrNop(metrics),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to end it.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until an in-progress sweep has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Sweep once on startup
	s.Sweep(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Sweep(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Sweep prunes every expiring collection once and returns the number of
// records removed. A failing collection does not stop the others.
func (s *HousekeepingService) Sweep(ctx context.Context) int {
	var total int
	for _, c := range s.Collections {
		n, err := c.Prune(ctx)
		if err != nil {
			s.Logger.Error("failed to prune collection", "kind", c.Kind, "error", err)
			continue
		}
		s.Metrics.ObservePruned(string(c.Kind), n)
		total += n
	}

	s.Logger.Debug("housekeeping sweep completed", "pruned", total)
	return total
}
