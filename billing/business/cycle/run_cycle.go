package cycle

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/samber/lo"

	"encore.dev/rlog"

	"encore.app/billing/model"
)

func (b *business) RunCycle(ctx context.Context, cycleID string) (*model.CycleResult, error) {
	unlock, err := b.invoiceBusiness.LockCycle(ctx, cycleID)
	if err != nil {
		rlog.Warn("billing cycle not started", "cycle_id", cycleID, "error", err)
		return nil, err
	}
	defer unlock()

	released, err := b.invoiceBusiness.ReleaseStale(ctx)
	if err != nil {
		return nil, err
	}

	result := &model.CycleResult{
		CycleID:  cycleID,
		Released: released,
		Paid:     []int32{},
		Pending:  []int32{},
	}

	var cycleErr error
	for ctx.Err() == nil {
		batch, err := b.invoiceBusiness.FetchForProcessing(ctx, b.batchSize)
		if err != nil {
			rlog.Error("failed to fetch invoices for processing", "cycle_id", cycleID, "error", err)
			cycleErr = err
			break
		}
		if len(batch) == 0 {
			break
		}
		result.Fetched += len(batch)

		paidSet := b.billingBusiness.BillInvoices(ctx, cycleID, batch)
		paid, unpaid := lo.FilterReject(batch, func(inv model.Invoice, _ int) bool {
			return paidSet.Has(inv.ID)
		})
		paidIDs := lo.Map(paid, func(inv model.Invoice, _ int) int32 { return inv.ID })
		result.Pending = append(result.Pending, lo.Map(unpaid, func(inv model.Invoice, _ int) int32 { return inv.ID })...)

		if err := b.retry(ctx, func(ctx context.Context) error {
			return b.invoiceBusiness.MarkPaid(ctx, paidIDs)
		}); err != nil {
			// charged invoices stay in processing; the next cycle settles them
			// from the billing log
			rlog.Error("failed to mark invoices paid",
				"cycle_id", cycleID,
				"invoice_ids", paidIDs,
				"error", err,
			)
			cycleErr = err
			break
		}
		result.Paid = append(result.Paid, paidIDs...)

		if len(batch) < int(b.batchSize) {
			break
		}
	}

	// every invoice fetched in this cycle and not paid goes back to pending,
	// even when the cycle was cut short
	if err := b.retry(ctx, func(ctx context.Context) error {
		return b.invoiceBusiness.MarkPending(ctx, result.Pending)
	}); err != nil {
		rlog.Error("failed to mark invoices pending",
			"cycle_id", cycleID,
			"invoice_ids", result.Pending,
			"error", err,
		)
		cycleErr = errors.Join(cycleErr, err)
	}

	BillingCycles.Increment()
	rlog.Info("billing cycle finished",
		"cycle_id", cycleID,
		"released", result.Released,
		"fetched", result.Fetched,
		"paid", len(result.Paid),
		"pending", len(result.Pending),
	)
	return result, cycleErr
}

// retry runs a status transition until it succeeds or the backoff gives up.
// It ignores cancellation of ctx so a stopped cycle still settles the
// invoices it holds.
func (b *business) retry(ctx context.Context, op func(ctx context.Context) error) error {
	ctx = context.WithoutCancel(ctx)
	return backoff.Retry(func() error {
		return op(ctx)
	}, b.newBackOff())
}
