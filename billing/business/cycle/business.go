package cycle

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"encore.app/billing/business/billing"
	"encore.app/billing/business/invoice"
	"encore.app/billing/model"
)

// Business runs one billing cycle: take the cycle lock, settle invoices left
// over from an aborted cycle, then fetch, bill and settle batches until nothing
// is pending. At most one cycle runs at a time.
type Business interface {
	RunCycle(ctx context.Context, cycleID string) (*model.CycleResult, error)
}

type business struct {
	invoiceBusiness invoice.Business
	billingBusiness billing.Business
	batchSize       int32
	newBackOff      func() backoff.BackOff
}

func NewCycleBusiness(
	invoiceBusiness invoice.Business,
	billingBusiness billing.Business,
	batchSize int32,
) Business {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &business{
		invoiceBusiness: invoiceBusiness,
		billingBusiness: billingBusiness,
		batchSize:       batchSize,
		newBackOff:      defaultBackOff,
	}
}

const DefaultBatchSize int32 = 100

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxElapsedTime = 30 * time.Second
	return backoff.WithMaxRetries(b, 5)
}
