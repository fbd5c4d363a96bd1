package customer

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// GetCustomer fails with a customer-not-found ChargeError when the id is
// unknown so the billing engine can classify it.
func (b *business) GetCustomer(ctx context.Context, id int32) (*model.Customer, error) {
	c, err := b.customerRepo.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.CustomerNotFound("get_customer", id)
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get customer"}
	}
	return toModel(c), nil
}
