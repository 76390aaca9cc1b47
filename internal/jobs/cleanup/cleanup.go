package cleanup

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Job purges moderation records that reached a terminal status longer ago
// than the retention window. It runs from the bot process on a timer.
type Job struct {
	reports   reportPurger
	feedback  feedbackPurger
	retention time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

type reportPurger interface {
	DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type feedbackPurger interface {
	DeleteClosedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

func New(reports reportPurger, feedback feedbackPurger, retention time.Duration, logger *zap.Logger) *Job {
	if retention <= 0 {
		retention = 90 * 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Job{
		reports:   reports,
		feedback:  feedback,
		retention: retention,
		now:       time.Now,
		logger:    logger,
	}
}

func (j *Job) Run(ctx context.Context) error {
	cutoff := j.now().UTC().Add(-j.retention)

	if j.reports != nil {
		rows, err := j.reports.DeleteResolvedBefore(ctx, cutoff)
		if err != nil {
			return fmt.Errorf("purge resolved reports: %w", err)
		}
		if rows > 0 {
			j.logger.Info("purged resolved reports", zap.Int64("deleted", rows))
		}
	}

	if j.feedback != nil {
		rows, err := j.feedback.DeleteClosedBefore(ctx, cutoff)
		if err != nil {
			return fmt.Errorf("purge closed feedback: %w", err)
		}
		if rows > 0 {
			j.logger.Info("purged closed feedback", zap.Int64("deleted", rows))
		}
	}

	return nil
}
