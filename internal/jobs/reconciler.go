// Package jobs runs scheduled maintenance against the store.
package jobs

import (
	"context"
	"fmt"
	"time"

	"club-coordination-backend/internal/logger"

	"github.com/robfig/cron/v3"
)

const runTimeout = 2 * time.Minute

// CounterRepairer recomputes a denormalized counter from its source rows
// and returns how many records it fixed.
type CounterRepairer interface {
	ReconcileMemberCounts(ctx context.Context) (int, error)
}

// Reconciler periodically repairs club member counts and team rosters counters
type Reconciler struct {
	cron     *cron.Cron
	targets  map[string]CounterRepairer
	order    []string
	schedule string
}

// NewReconciler creates a reconciler for the given targets. An empty schedule disables Start.
func NewReconciler(schedule string, clubs, teams CounterRepairer) *Reconciler {
	return &Reconciler{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		targets:  map[string]CounterRepairer{"clubs": clubs, "teams": teams},
		order:    []string{"clubs", "teams"},
		schedule: schedule,
	}
}

// RunOnce repairs every target and returns the number of fixed records per target.
// A failing target does not stop the others.
func (r *Reconciler) RunOnce(ctx context.Context) (map[string]int, error) {
	log := logger.WithContext(ctx)
	fixed := make(map[string]int, len(r.targets))
	var firstErr error

	for _, name := range r.order {
		n, err := r.targets[name].ReconcileMemberCounts(ctx)
		if err != nil {
			log.WithError(err).WithField("target", name).Error("counter reconciliation failed")
			if firstErr == nil {
				firstErr = fmt.Errorf("reconcile %s: %w", name, err)
			}
			continue
		}
		fixed[name] = n
		if n > 0 {
			log.WithFields(map[string]interface{}{"target": name, "fixed": n}).Warn("repaired drifted member counters")
		}
	}

	return fixed, firstErr
}

// Start schedules RunOnce. It is a no-op when no schedule is configured.
func (r *Reconciler) Start() error {
	if r.schedule == "" {
		logger.New().Info("counter reconciliation disabled")
		return nil
	}

	_, err := r.cron.AddFunc(r.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		_, _ = r.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid reconcile schedule %q: %w", r.schedule, err)
	}

	r.cron.Start()
	logger.New().WithField("schedule", r.schedule).Info("counter reconciliation scheduled")
	return nil
}

// Stop halts the schedule and waits for a running reconciliation to finish
func (r *Reconciler) Stop() {
	<-r.cron.Stop().Done()
}
