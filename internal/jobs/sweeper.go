// Package jobs schedules recurring background maintenance work.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"clubhub/internal/repository"
)

// SweepTimeout bounds a single sweep of expired invitations.
const SweepTimeout = 30 * time.Second

// InvitationSweeper periodically removes expired invitations so they stop
// showing up in pending lists and their tokens stop being accepted.
type InvitationSweeper struct {
	invitations repository.InvitationRepository
	logger      *logrus.Logger
	schedule    string
	cron        *cron.Cron
}

// NewInvitationSweeper creates a sweeper with the given cron schedule
// (standard five-field syntax, e.g. "0 * * * *" for hourly).
func NewInvitationSweeper(invitations repository.InvitationRepository, logger *logrus.Logger, schedule string) *InvitationSweeper {
	return &InvitationSweeper{
		invitations: invitations,
		logger:      logger,
		schedule:    schedule,
		cron:        cron.New(),
	}
}

// Start schedules the sweep and starts the scheduler.
func (s *InvitationSweeper) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Infof("invitation sweeper started with schedule %q", s.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *InvitationSweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("invitation sweeper stopped")
}

// Sweep runs one sweep immediately. Exposed for manual runs and tests.
func (s *InvitationSweeper) Sweep(ctx context.Context) (int, error) {
	return s.invitations.DeleteExpired(ctx, time.Now())
}

func (s *InvitationSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), SweepTimeout)
	defer cancel()

	removed, err := s.Sweep(ctx)
	if err != nil {
		s.logger.WithError(err).Error("invitation sweep failed")
		return
	}
	if removed > 0 {
		s.logger.Infof("invitation sweep removed %d expired invitations", removed)
	}
}
