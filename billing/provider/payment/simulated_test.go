package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/billing/model"
)

func TestSimulatedProvider(t *testing.T) {
	invoice := model.Invoice{ID: 1, Amount: model.MustMoney("5", model.USD)}

	t.Run("accepts_below_rate", func(t *testing.T) {
		p := &simulatedProvider{acceptRate: 0.5, roll: func() float64 { return 0.2 }}
		charged, err := p.Charge(context.Background(), "cycle-1", invoice)
		require.NoError(t, err)
		assert.True(t, charged)
	})

	t.Run("declines_at_or_above_rate", func(t *testing.T) {
		p := &simulatedProvider{acceptRate: 0.5, roll: func() float64 { return 0.5 }}
		charged, err := p.Charge(context.Background(), "cycle-1", invoice)
		require.NoError(t, err)
		assert.False(t, charged)
	})

	t.Run("always_accepts", func(t *testing.T) {
		p := NewSimulatedProvider(1)
		for i := 0; i < 100; i++ {
			charged, err := p.Charge(context.Background(), "cycle-1", invoice)
			require.NoError(t, err)
			assert.True(t, charged)
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := NewSimulatedProvider(1)
		_, err := p.Charge(ctx, "cycle-1", invoice)
		var chargeErr *model.ChargeError
		require.ErrorAs(t, err, &chargeErr)
		assert.Equal(t, model.FailureNetwork, chargeErr.Kind)
	})
}
