package invoice

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/repository/invoices"
)

const (
	// CycleLease bounds how long a cycle may hold the lock. It outlives both
	// the activity StartToClose timeout and the manual run timeout.
	CycleLease = 2 * time.Hour

	// StaleAfter is how long an invoice must sit in processing before a new
	// cycle may release it. No live cycle holds a claim that long.
	StaleAfter = CycleLease
)

var ErrCycleInProgress = &errs.Error{Code: errs.Aborted, Message: "another billing cycle is in progress"}

// LockCycle takes the single billing cycle lease for cycleID. It returns
// ErrCycleInProgress while another cycle holds an unexpired lease. The
// returned unlock ignores cancellation of ctx.
func (b *business) LockCycle(ctx context.Context, cycleID string) (func(), error) {
	_, err := b.invoiceRepo.AcquireCycleLock(ctx, invoices.AcquireCycleLockParams{
		Owner:        cycleID,
		LeaseSeconds: CycleLease.Seconds(),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCycleInProgress
	}
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to acquire billing cycle lock"}
	}

	unlock := func() {
		ctx := context.WithoutCancel(ctx)
		if _, err := b.invoiceRepo.ReleaseCycleLock(ctx, cycleID); err != nil {
			// the lease expires on its own
			rlog.Error("failed to release billing cycle lock", "cycle_id", cycleID, "error", err)
		}
	}
	return unlock, nil
}
