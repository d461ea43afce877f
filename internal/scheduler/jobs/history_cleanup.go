package jobs

import (
	"context"
	"time"

	"github.com/electa-app/electa/internal/history"
	"github.com/electa-app/electa/pkg/logger"
)

// historyRetention is how long persisted scans are kept.
const historyRetention = 90 * 24 * time.Hour

// HistoryCleanupJob prunes old persisted scans.
type HistoryCleanupJob struct {
	repo   *history.Repository
	logger *logger.Logger
}

// NewHistoryCleanupJob creates the cleanup job.
func NewHistoryCleanupJob(repo *history.Repository, log *logger.Logger) *HistoryCleanupJob {
	return &HistoryCleanupJob{
		repo:   repo,
		logger: log,
	}
}

// Name returns the job name.
func (j *HistoryCleanupJob) Name() string {
	return "history_cleanup"
}

// Schedule runs weekly, Sunday 03:00.
func (j *HistoryCleanupJob) Schedule() string {
	return "0 0 3 * * 0"
}

// Run deletes scans older than the retention window.
func (j *HistoryCleanupJob) Run(ctx context.Context) error {
	cutoff := time.Now().Add(-historyRetention)

	deleted, err := j.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	if deleted > 0 {
		j.logger.WithField("deleted", deleted).Info("Old scans pruned")
	}
	return nil
}
