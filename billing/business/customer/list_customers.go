package customer

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/customers"
)

func (b *business) ListCustomers(ctx context.Context, limit, offset int32) ([]*model.Customer, int64, error) {
	rows, err := b.customerRepo.ListCustomers(ctx, customers.ListCustomersParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list customers"}
	}

	total, err := b.customerRepo.CountCustomers(ctx)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count customers"}
	}

	result := make([]*model.Customer, len(rows))
	for i, row := range rows {
		result[i] = toModel(row)
	}
	return result, total, nil
}
