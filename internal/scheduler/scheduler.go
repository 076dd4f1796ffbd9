package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

const runTimeout = 30 * time.Second

// Refresher is the job the scheduler drives.
type Refresher interface {
	RefreshRecent(ctx context.Context) (int, error)
}

// Scheduler periodically refreshes the quick-weather summaries of recent searches.
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresher Refresher
	interval  time.Duration
}

// New creates a new Scheduler.
func New(interval time.Duration, refresher Refresher) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		refresher: refresher,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// A zero interval disables the job.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		slog.Info("scheduler: refresh disabled")
		return nil
	}

	minutes := max(int(s.interval.Minutes()), 1)

	_, err := s.scheduler.Every(minutes).Minutes().WaitForSchedule().Do(s.run)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	slog.Info("scheduler: started", "every_minutes", minutes)
	return nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	start := time.Now()
	n, err := s.refresher.RefreshRecent(ctx)
	if err != nil {
		slog.Error("scheduler: recent refresh failed", "err", err)
		return
	}
	slog.Info("scheduler: refreshed recent searches", "count", n, "took", time.Since(start))
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
