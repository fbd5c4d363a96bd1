package payment

import (
	"context"

	"encore.app/billing/model"
)

// Provider charges an invoice with an external payment service.
//
// Charge returns true when the customer was charged and false when the charge
// was declined. Any other outcome is an error, a *model.ChargeError when the
// cause is known. cycleID scopes the provider-side idempotency key, so a
// retry inside one cycle is deduplicated while the next cycle makes a fresh
// attempt.
type Provider interface {
	Charge(ctx context.Context, cycleID string, invoice model.Invoice) (bool, error)
}

const (
	ProviderStripe    = "stripe"
	ProviderSimulated = "simulated"
)
