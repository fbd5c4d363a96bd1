package billing

import (
	"context"
	"runtime"

	"encore.app/billing/business/billinglog"
	"encore.app/billing/business/currency"
	"encore.app/billing/model"
	"encore.app/billing/provider/payment"
)

// Business is the billing orchestration engine.
type Business interface {
	// BillInvoices attempts to charge every invoice and writes exactly one
	// billing log per invoice. It returns the ids of the invoices that were
	// charged and blocks until every invoice has an outcome.
	BillInvoices(ctx context.Context, cycleID string, invoices []model.Invoice) model.InvoiceIDSet
}

type business struct {
	currencyBusiness   currency.Business
	paymentProvider    payment.Provider
	billingLogBusiness billinglog.Business
	workers            int
}

func NewBillingBusiness(
	currencyBusiness currency.Business,
	paymentProvider payment.Provider,
	billingLogBusiness billinglog.Business,
	workers int,
) Business {
	return &business{
		currencyBusiness:   currencyBusiness,
		paymentProvider:    paymentProvider,
		billingLogBusiness: billingLogBusiness,
		workers:            workers,
	}
}

func (b *business) maxGoroutines() int {
	if b.workers > 0 {
		return b.workers
	}
	return runtime.GOMAXPROCS(0)
}
