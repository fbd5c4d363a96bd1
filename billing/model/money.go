package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an immutable non-negative amount in one currency.
type Money struct {
	Value    decimal.Decimal `json:"value"`
	Currency Currency        `json:"currency"`
}

// NewMoney validates and builds a Money value.
func NewMoney(value decimal.Decimal, currency Currency) (Money, error) {
	if value.IsNegative() {
		return Money{}, fmt.Errorf("money value must not be negative, got %s", value.String())
	}
	if !currency.Valid() {
		return Money{}, fmt.Errorf("unsupported currency %q", currency)
	}
	return Money{Value: value, Currency: currency}, nil
}

// MustMoney is NewMoney for literals known to be valid. It panics otherwise.
func MustMoney(value string, currency Currency) Money {
	m, err := NewMoney(decimal.RequireFromString(value), currency)
	if err != nil {
		panic(err)
	}
	return m
}

// SameCurrency reports whether both amounts can be compared.
func (m Money) SameCurrency(other Money) bool {
	return m.Currency == other.Currency
}

// Equal compares two amounts. Amounts in different currencies are never equal.
func (m Money) Equal(other Money) bool {
	return m.SameCurrency(other) && m.Value.Equal(other.Value)
}

// Cents returns the amount in minor units, rounded half away from zero.
func (m Money) Cents() int64 {
	return m.Value.Shift(2).Round(0).IntPart()
}

func (m Money) String() string {
	return m.Value.StringFixed(2) + " " + string(m.Currency)
}
