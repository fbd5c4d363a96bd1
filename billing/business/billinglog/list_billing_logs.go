package billinglog

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/billinglogs"
)

// ListBillingLogs returns the newest records first, optionally for a single
// invoice.
func (b *business) ListBillingLogs(ctx context.Context, invoiceID *int32, limit, offset int32) ([]*model.BillingLog, int64, error) {
	filter := pgtype.Int4{}
	if invoiceID != nil {
		filter = pgtype.Int4{Int32: *invoiceID, Valid: true}
	}

	rows, err := b.billingLogRepo.ListBillingLogs(ctx, billinglogs.ListBillingLogsParams{
		InvoiceID: filter,
		Lim:       limit,
		Off:       offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list billing logs"}
	}

	total, err := b.billingLogRepo.CountBillingLogs(ctx, filter)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count billing logs"}
	}

	result := make([]*model.BillingLog, len(rows))
	for i, row := range rows {
		result[i] = toModel(row)
	}
	return result, total, nil
}
