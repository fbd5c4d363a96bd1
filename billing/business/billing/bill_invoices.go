package billing

import (
	"context"
	"fmt"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"encore.dev/rlog"

	"encore.app/billing/model"
)

func (b *business) BillInvoices(ctx context.Context, cycleID string, invoices []model.Invoice) model.InvoiceIDSet {
	paid := make(model.InvoiceIDSet, len(invoices))
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(b.maxGoroutines())
	for _, invoice := range invoices {
		invoice := invoice
		p.Go(func() {
			status, charged := b.billInvoice(ctx, cycleID, invoice)
			// The charge already happened; its audit row must survive a
			// cancelled cycle.
			b.record(context.WithoutCancel(ctx), cycleID, invoice, charged, status)
			BillingAttempts.With(AttemptLabels{Status: string(status)}).Increment()

			if status == model.BillingStatusAccepted {
				mu.Lock()
				paid[invoice.ID] = struct{}{}
				mu.Unlock()
			}
		})
	}
	p.Wait()

	rlog.Info("billed invoices",
		"cycle_id", cycleID,
		"invoices", len(invoices),
		"paid", len(paid),
	)
	return paid
}

// billInvoice runs conversion and charge for a single invoice. It never
// panics and never returns an error: every outcome maps to a status. The
// returned amount is the one presented to the provider.
func (b *business) billInvoice(ctx context.Context, cycleID string, invoice model.Invoice) (status model.BillingStatus, charged model.Money) {
	charged = invoice.Amount
	defer func() {
		if r := recover(); r != nil {
			rlog.Error("panic while billing invoice",
				"invoice_id", invoice.ID,
				"panic", fmt.Sprint(r),
			)
			status = model.BillingStatusGeneralFailure
		}
	}()

	converted, err := b.currencyBusiness.CheckAndConvert(ctx, invoice)
	if err != nil {
		rlog.Warn("currency conversion failed",
			"invoice_id", invoice.ID,
			"customer_id", invoice.CustomerID,
			"error", err,
		)
		return ClassifyFailure(err), charged
	}
	charged = converted.Amount

	ok, err := b.paymentProvider.Charge(ctx, cycleID, converted)
	if err != nil {
		rlog.Warn("charge failed",
			"invoice_id", invoice.ID,
			"customer_id", invoice.CustomerID,
			"error", err,
		)
		return ClassifyFailure(err), charged
	}
	if !ok {
		return model.BillingStatusDeclined, charged
	}
	return model.BillingStatusAccepted, charged
}

// record is fire-and-forget: a failed write is logged and never changes the
// outcome of the charge.
func (b *business) record(ctx context.Context, cycleID string, invoice model.Invoice, charged model.Money, status model.BillingStatus) {
	err := b.billingLogBusiness.Record(ctx, model.BillingLog{
		CycleID:       cycleID,
		CustomerID:    invoice.CustomerID,
		InvoiceID:     invoice.ID,
		ChargedAmount: charged,
		Status:        status,
	})
	if err != nil {
		rlog.Error("failed to record billing log",
			"cycle_id", cycleID,
			"invoice_id", invoice.ID,
			"status", string(status),
			"error", err,
		)
	}
}
