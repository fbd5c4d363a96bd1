package payment

import (
	"context"
	"math/rand"

	"encore.app/billing/model"
)

type simulatedProvider struct {
	acceptRate float64
	roll       func() float64
}

// NewSimulatedProvider accepts a charge with probability acceptRate. It is
// used in local and test environments.
func NewSimulatedProvider(acceptRate float64) Provider {
	return &simulatedProvider{
		acceptRate: acceptRate,
		roll:       rand.Float64,
	}
}

func (p *simulatedProvider) Charge(ctx context.Context, _ string, invoice model.Invoice) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, model.NetworkFailure("simulated_charge", err)
	}
	return p.roll() < p.acceptRate, nil
}
