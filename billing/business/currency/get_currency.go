package currency

import (
	"context"

	"github.com/patrickmn/go-cache"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

func (b *business) GetCurrency(ctx context.Context, code model.Currency) (*model.CurrencyInfo, error) {
	if b.rates != nil {
		if cached, ok := b.rates.Get(code.String()); ok {
			return cached.(*model.CurrencyInfo), nil
		}
	}

	dbCurrency, err := b.currencyRepo.GetCurrency(ctx, code.String())
	if err != nil {
		return nil, &errs.Error{Code: errs.NotFound, Message: "currency not supported"}
	}
	if !dbCurrency.Enabled {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "currency disabled"}
	}

	currency := &model.CurrencyInfo{
		Code:    model.Currency(dbCurrency.Code),
		Rate:    dbCurrency.Rate,
		Enabled: dbCurrency.Enabled,
	}
	if dbCurrency.Symbol.Valid {
		currency.Symbol = &dbCurrency.Symbol.String
	}

	if b.rates != nil {
		b.rates.Set(code.String(), currency, cache.DefaultExpiration)
	}
	return currency, nil
}
