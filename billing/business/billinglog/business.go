package billinglog

import (
	"context"

	"encore.app/billing/model"
	"encore.app/billing/repository/billinglogs"
)

// Business is the append-only audit sink for charge attempts.
type Business interface {
	Record(ctx context.Context, log model.BillingLog) error
	ListBillingLogs(ctx context.Context, invoiceID *int32, limit, offset int32) ([]*model.BillingLog, int64, error)
}

type business struct {
	billingLogRepo billinglogs.Querier
}

func NewBillingLogBusiness(billingLogRepo billinglogs.Querier) Business {
	return &business{
		billingLogRepo: billingLogRepo,
	}
}

func toModel(row billinglogs.BillingLog) *model.BillingLog {
	return &model.BillingLog{
		ID:         row.ID,
		CycleID:    row.CycleID,
		CustomerID: row.CustomerID,
		InvoiceID:  row.InvoiceID,
		ChargedAmount: model.Money{
			Value:    row.Amount,
			Currency: model.Currency(row.Currency),
		},
		Status:    model.BillingStatus(row.Status),
		CreatedAt: row.CreatedAt.Time,
	}
}
