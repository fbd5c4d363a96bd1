package invoice

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

func (b *business) ListInvoices(ctx context.Context, limit, offset int32) ([]*model.Invoice, int64, error) {
	rows, err := b.invoiceRepo.ListInvoices(ctx, invoices.ListInvoicesParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list invoices"}
	}

	total, err := b.invoiceRepo.CountInvoices(ctx)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count invoices"}
	}

	result := make([]*model.Invoice, len(rows))
	for i, row := range rows {
		invoice := toModel(row)
		result[i] = &invoice
	}
	return result, total, nil
}
