// Package jobs runs periodic housekeeping on the booking database.
package jobs

import (
	"context"
	"fmt"
	"time"

	"umrah-booking/internal/data/repository"
	"umrah-booking/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const jobTimeout = time.Minute

// Scheduler owns the cron runner and the cleanup jobs registered on it.
type Scheduler struct {
	cron *cron.Cron
	repo *repository.Repository
	log  *zap.Logger
}

func NewScheduler(repo *repository.Repository, log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		repo: repo,
		log:  log.With(zap.String("component", "cron")),
	}
}

// Register adds the cleanup jobs using the schedules from config.
func (s *Scheduler) Register(config utils.CronConfig) error {
	if _, err := s.cron.AddFunc(config.VerificationCleanup, s.purgeVerifications); err != nil {
		return fmt.Errorf("schedule verification cleanup %q: %w", config.VerificationCleanup, err)
	}
	if _, err := s.cron.AddFunc(config.SessionCleanup, s.purgeSessions); err != nil {
		return fmt.Errorf("schedule session cleanup %q: %w", config.SessionCleanup, err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Cron jobs started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop waits for running jobs to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("Cron jobs still running at shutdown")
	}
}

func (s *Scheduler) purgeVerifications() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := s.repo.Verification.DeleteExpired(ctx)
	if err != nil {
		s.log.Error("Failed to purge expired verifications", zap.Error(err))
		return
	}
	s.log.Info("Expired verifications purged", zap.Int64("deleted", n))
}

func (s *Scheduler) purgeSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := s.repo.Session.CleanExpiredSessions(ctx)
	if err != nil {
		s.log.Error("Failed to purge expired sessions", zap.Error(err))
		return
	}
	s.log.Info("Expired sessions purged", zap.Int64("deleted", n))
}
