package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/billing/repository/billinglogs"
	"encore.app/billing/repository/currencies"
	"encore.app/billing/repository/customers"
	"encore.app/billing/repository/invoices"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Invoices    *invoices.Queries
	Customers   customers.Querier
	Currencies  currencies.Querier
	BillingLogs billinglogs.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Invoices:    invoices.New(db),
		Customers:   customers.New(db),
		Currencies:  currencies.New(db),
		BillingLogs: billinglogs.New(db),
	}
}
