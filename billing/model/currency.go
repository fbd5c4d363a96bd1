package model

import (
	"github.com/shopspring/decimal"
)

type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	DKK Currency = "DKK"
	SEK Currency = "SEK"
	GBP Currency = "GBP"
)

// Currencies lists every currency the billing service can hold an amount in.
var Currencies = []Currency{EUR, USD, DKK, SEK, GBP}

// Valid reports whether c belongs to the supported currency set.
func (c Currency) Valid() bool {
	for _, supported := range Currencies {
		if c == supported {
			return true
		}
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}

// CurrencyInfo is a row of the exchange rate table. Rate is the amount of
// this currency per 1 USD.
type CurrencyInfo struct {
	Code    Currency        `json:"code"`
	Symbol  *string         `json:"symbol,omitempty"`
	Rate    decimal.Decimal `json:"rate"`
	Enabled bool            `json:"enabled"`
}
