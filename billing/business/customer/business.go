package customer

import (
	"context"

	"encore.app/billing/model"
	"encore.app/billing/repository/customers"
)

type Business interface {
	GetCustomer(ctx context.Context, id int32) (*model.Customer, error)
	ListCustomers(ctx context.Context, limit, offset int32) ([]*model.Customer, int64, error)
}

type business struct {
	customerRepo customers.Querier
}

func NewCustomerBusiness(customerRepo customers.Querier) Business {
	return &business{
		customerRepo: customerRepo,
	}
}

func toModel(c customers.Customer) *model.Customer {
	customer := &model.Customer{
		ID:       c.ID,
		Currency: model.Currency(c.Currency),
	}
	if c.StripeCustomerID.Valid {
		customer.StripeCustomerID = &c.StripeCustomerID.String
	}
	return customer
}
