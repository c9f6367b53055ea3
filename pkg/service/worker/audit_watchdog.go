package worker

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/seoward-lab/seoward/pkg/domain/interfaces"
	"github.com/seoward-lab/seoward/pkg/domain/types"
	"github.com/seoward-lab/seoward/pkg/usecase"
	"github.com/seoward-lab/seoward/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// failConcurrency bounds how many stale audits a single sweep fails in
// parallel, so a large backlog does not hammer the repository.
const failConcurrency = 4

// AuditWatchdog periodically fails audits that have been running past
// their deadline, typically because an external crawler died without
// reporting back.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - For future horizontal scaling, implement distributed locking or leader election
type AuditWatchdog struct {
	repo     interfaces.Repository
	audits   *usecase.AuditUseCase
	deadline time.Duration
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewAuditWatchdog creates a watchdog that sweeps every interval and
// fails audits still running after deadline.
func NewAuditWatchdog(repo interfaces.Repository, audits *usecase.AuditUseCase, deadline, interval time.Duration) *AuditWatchdog {
	return &AuditWatchdog{
		repo:     repo,
		audits:   audits,
		deadline: deadline,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop. Does not block server startup.
func (w *AuditWatchdog) Start(ctx context.Context) error {
	logging.Default().Info("Audit watchdog starting",
		"deadline", w.deadline.String(),
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the watchdog to stop and waits for completion
func (w *AuditWatchdog) Stop() {
	logging.Default().Info("Audit watchdog stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Audit watchdog stopped")
}

func (w *AuditWatchdog) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.Sweep(ctx); err != nil {
				// Log error but continue worker
				logging.Default().Error("Audit watchdog sweep failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			logging.Default().Info("Audit watchdog received stop signal")
			return

		case <-ctx.Done():
			logging.Default().Info("Audit watchdog context cancelled")
			return
		}
	}
}

// Sweep performs a single pass: every audit still running past the
// deadline is marked failed, and each failure is recorded in the
// campaign activity log.
func (w *AuditWatchdog) Sweep(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-w.deadline)

	stale, err := w.repo.Audit().ListRunningBefore(ctx, cutoff)
	if err != nil {
		return goerr.Wrap(err, "failed to list stale audits")
	}
	if len(stale) == 0 {
		return nil
	}

	logging.From(ctx).Info("Audit watchdog found stale audits",
		"count", len(stale),
		"cutoff", cutoff.Format(time.RFC3339))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(failConcurrency)
	for _, audit := range stale {
		eg.Go(func() error {
			if _, err := w.audits.Fail(ctx, audit.ID, types.ProfileID(""), "audit exceeded runtime deadline"); err != nil {
				return goerr.Wrap(err, "failed to fail stale audit", goerr.V("audit_id", audit.ID))
			}
			return nil
		})
	}

	return eg.Wait()
}
