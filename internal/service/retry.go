package service

import (
	"context"
	"time"

	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/logger"

	"github.com/cenkalti/backoff/v4"
)

// Retrier re-runs store transactions that failed with a transient conflict
type Retrier struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
}

// NewRetrier creates a retrier making at most maxAttempts attempts per operation
func NewRetrier(maxAttempts int) *Retrier {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Retrier{
		maxAttempts:     maxAttempts,
		initialInterval: 10 * time.Millisecond,
		maxInterval:     200 * time.Millisecond,
	}
}

func (r *Retrier) policy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(r.maxAttempts-1)), ctx)
}

// Do runs fn until it succeeds, fails permanently, or the attempts are used up.
// Exhausted transient conflicts are reported as ErrTryAgain.
func (r *Retrier) Do(ctx context.Context, operation string, fn func() error) error {
	attempt := 0
	err := backoff.RetryNotify(func() error {
		attempt++
		err := fn()
		if err == nil {
			return nil
		}
		if apperrors.IsTransientConflict(err) {
			return err
		}
		return backoff.Permanent(err)
	}, r.policy(ctx), func(err error, wait time.Duration) {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"operation": operation,
			"attempt":   attempt,
			"wait":      wait.String(),
		}).Debug("retrying store transaction after transient conflict")
	})

	if err != nil && apperrors.IsTransientConflict(err) {
		logger.WithContext(ctx).WithError(err).WithField("operation", operation).
			Warn("store transaction kept conflicting, giving up")
		return apperrors.ErrTryAgain
	}
	return err
}
