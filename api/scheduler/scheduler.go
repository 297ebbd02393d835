// Package scheduler runs the periodic background jobs for the service.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/medassist/medassist-api/databases"
)

const purgeTimeout = 5 * time.Minute

// Scheduler handles periodic background jobs for injury record retention
type Scheduler struct {
	cron          *cron.Cron
	RDB           databases.InjuryRecordDatabase
	retentionDays int
}

// NewScheduler creates a new scheduler instance
func NewScheduler(rdb databases.InjuryRecordDatabase, retentionDays int) *Scheduler {
	return &Scheduler{
		cron:          cron.New(cron.WithLocation(time.UTC)),
		RDB:           rdb,
		retentionDays: retentionDays,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Purge injury records past the retention window daily at 3 AM UTC
	_, err := s.cron.AddFunc("0 3 * * *", s.purgeExpiredRecords)
	if err != nil {
		zap.S().Errorw("failed to register retention job", "error", err)
	}

	s.cron.Start()
	zap.S().Infow("injury record retention scheduler started",
		"retentionDays", s.retentionDays,
	)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("injury record retention scheduler stopped")
}

func (s *Scheduler) purgeExpiredRecords() {
	if s.retentionDays <= 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	cutoff := time.Now().UTC().AddDate(0, 0, -s.retentionDays)
	deleted, err := s.RDB.DeleteInjuryRecordsBefore(ctx, cutoff)
	if err != nil {
		zap.S().Errorw("failed to purge expired injury records",
			"cutoff", cutoff,
			"error", err,
		)
		return
	}

	zap.S().Infow("purged expired injury records",
		"cutoff", cutoff,
		"deleted", deleted,
	)
}
