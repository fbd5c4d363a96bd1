package currency

import (
	"context"

	"encore.app/billing/model"
)

// CheckAndConvert returns the invoice expressed in its customer's currency.
// The invoice is returned unchanged when the currencies already match.
func (b *business) CheckAndConvert(ctx context.Context, invoice model.Invoice) (model.Invoice, error) {
	customer, err := b.customerBusiness.GetCustomer(ctx, invoice.CustomerID)
	if err != nil {
		return model.Invoice{}, err
	}

	if customer.Currency == invoice.Amount.Currency {
		return invoice, nil
	}

	converted, err := b.ConvertAmount(ctx, customer.Currency, invoice.Amount)
	if err != nil {
		return model.Invoice{}, err
	}
	return invoice.WithAmount(converted), nil
}
