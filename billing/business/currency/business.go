package currency

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"encore.app/billing/business/customer"
	"encore.app/billing/model"
	"encore.app/billing/repository/currencies"
)

type Business interface {
	GetCurrency(ctx context.Context, code model.Currency) (*model.CurrencyInfo, error)
	ConvertAmount(ctx context.Context, to model.Currency, amount model.Money) (model.Money, error)
	CheckAndConvert(ctx context.Context, invoice model.Invoice) (model.Invoice, error)
}

type business struct {
	currencyRepo     currencies.Querier
	customerBusiness customer.Business
	rates            *cache.Cache
}

// NewCurrencyBusiness builds the conversion collaborator. Rates read from the
// currencies table are cached for rateTTL.
func NewCurrencyBusiness(
	currencyRepo currencies.Querier,
	customerBusiness customer.Business,
	rateTTL time.Duration,
) Business {
	return &business{
		currencyRepo:     currencyRepo,
		customerBusiness: customerBusiness,
		rates:            cache.New(rateTTL, 2*rateTTL),
	}
}
