package invoice

import (
	"context"

	"encore.dev/rlog"

	"encore.app/billing/model"
)

// FetchForProcessing claims up to limit pending invoices. Claimed invoices are
// in processing and invisible to other cycles until they are marked paid or
// pending.
func (b *business) FetchForProcessing(ctx context.Context, limit int32) ([]model.Invoice, error) {
	rows, err := b.stateMachine.ClaimForProcessing(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]model.Invoice, len(rows))
	for i, row := range rows {
		result[i] = toModel(row)
	}
	return result, nil
}

func (b *business) MarkPaid(ctx context.Context, ids []int32) error {
	return b.transition(ctx, ids, model.InvoiceStatusPaid)
}

func (b *business) MarkPending(ctx context.Context, ids []int32) error {
	return b.transition(ctx, ids, model.InvoiceStatusPending)
}

// ReleaseStale settles invoices left in processing by an aborted cycle. Only
// claims older than StaleAfter are touched.
func (b *business) ReleaseStale(ctx context.Context) (int64, error) {
	released, err := b.stateMachine.ReleaseProcessing(ctx, StaleAfter)
	if err != nil {
		return 0, err
	}
	if released > 0 {
		rlog.Warn("released stale processing invoices", "count", released)
	}
	return released, nil
}

func (b *business) transition(ctx context.Context, ids []int32, to model.InvoiceStatus) error {
	if len(ids) == 0 {
		return nil
	}

	updated, err := b.stateMachine.Transition(ctx, ids, to)
	if err != nil {
		return err
	}
	if updated != int64(len(ids)) {
		rlog.Warn("not every invoice changed status",
			"status", string(to),
			"requested", len(ids),
			"updated", updated,
		)
	}
	return nil
}
