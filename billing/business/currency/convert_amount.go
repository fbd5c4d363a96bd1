package currency

import (
	"context"
	"fmt"

	"encore.app/billing/model"
)

const opConvertAmount = "convert_amount"

// ConvertAmount converts amount into currency to using the rate table. Rates
// are stored per 1 USD, so the conversion goes through USD. Any failure is a
// currency-mismatch ChargeError.
func (b *business) ConvertAmount(ctx context.Context, to model.Currency, amount model.Money) (model.Money, error) {
	if amount.Currency == to {
		return amount, nil
	}
	if !to.Valid() || !amount.Currency.Valid() {
		return model.Money{}, model.CurrencyMismatch(opConvertAmount,
			fmt.Errorf("cannot convert %s to %s", amount.Currency, to))
	}

	from, err := b.GetCurrency(ctx, amount.Currency)
	if err != nil {
		return model.Money{}, model.CurrencyMismatch(opConvertAmount, err)
	}
	target, err := b.GetCurrency(ctx, to)
	if err != nil {
		return model.Money{}, model.CurrencyMismatch(opConvertAmount, err)
	}
	if !from.Rate.IsPositive() || !target.Rate.IsPositive() {
		return model.Money{}, model.CurrencyMismatch(opConvertAmount,
			fmt.Errorf("no usable rate between %s and %s", amount.Currency, to))
	}

	// amount / from_rate * to_rate
	converted := amount.Value.Div(from.Rate).Mul(target.Rate).Round(2)

	result, err := model.NewMoney(converted, to)
	if err != nil {
		return model.Money{}, model.CurrencyMismatch(opConvertAmount, err)
	}
	return result, nil
}
