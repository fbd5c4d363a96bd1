package billinglog

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
	"encore.app/billing/repository/billinglogs"
)

// Record appends one audit record. A second record for the same cycle and
// invoice is dropped.
func (b *business) Record(ctx context.Context, log model.BillingLog) error {
	if log.CycleID == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "cycle id is required"}
	}

	_, err := b.billingLogRepo.CreateBillingLog(ctx, billinglogs.CreateBillingLogParams{
		CycleID:    log.CycleID,
		CustomerID: log.CustomerID,
		InvoiceID:  log.InvoiceID,
		Currency:   log.ChargedAmount.Currency.String(),
		Amount:     log.ChargedAmount.Value,
		Status:     string(log.Status),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			rlog.Warn("billing log already recorded for cycle",
				"cycle_id", log.CycleID,
				"invoice_id", log.InvoiceID,
			)
			return nil
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to record billing log"}
	}
	return nil
}
