package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the cron loop that resets the daily challenge at the day
// boundary. The game core itself never clears a completed challenge; this is
// the external collaborator that does.
type Scheduler struct {
	cron *cron.Cron
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{cron: cron.New()}
}

// RegisterDailyReset schedules reset on the given cron expression
// ("0 0 * * *" for midnight).
func (s *Scheduler) RegisterDailyReset(ctx context.Context, spec string, reset func(context.Context) error) error {
	_, err := s.cron.AddFunc(spec, func() {
		if err := reset(ctx); err != nil {
			slog.Error("daily challenge reset failed", "err", err)
			return
		}
		slog.Info("daily challenge reset")
	})
	if err != nil {
		return fmt.Errorf("scheduler.RegisterDailyReset: %q: %w", spec, err)
	}
	return nil
}

// Start begins running scheduled jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started")
}

// Stop stops the scheduler, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("scheduler stopped")
}
