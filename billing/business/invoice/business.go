package invoice

import (
	"context"

	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

// Business is the invoice store used by the billing cycle and the read APIs.
// Status changes always go through the state machine.
type Business interface {
	GetInvoice(ctx context.Context, id int32) (*model.Invoice, error)
	ListInvoices(ctx context.Context, limit, offset int32) ([]*model.Invoice, int64, error)

	FetchForProcessing(ctx context.Context, limit int32) ([]model.Invoice, error)
	MarkPaid(ctx context.Context, ids []int32) error
	MarkPending(ctx context.Context, ids []int32) error
	ReleaseStale(ctx context.Context) (int64, error)
	LockCycle(ctx context.Context, cycleID string) (unlock func(), err error)
}

type business struct {
	invoiceRepo  invoices.Querier
	stateMachine domain.StateMachine
}

func NewInvoiceBusiness(invoiceRepo invoices.Querier, stateMachine domain.StateMachine) Business {
	return &business{
		invoiceRepo:  invoiceRepo,
		stateMachine: stateMachine,
	}
}

// toModel does not validate the stored currency. An unknown currency surfaces
// later as a conversion failure for that invoice only.
func toModel(row invoices.Invoice) model.Invoice {
	return model.Invoice{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Amount: model.Money{
			Value:    row.Value,
			Currency: model.Currency(row.Currency),
		},
		Status:    model.InvoiceStatus(row.Status),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
