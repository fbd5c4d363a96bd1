package billing

import (
	"encore.dev/metrics"
)

type AttemptLabels struct {
	Status string
}

// BillingAttempts counts charge attempts by their recorded status.
var BillingAttempts = metrics.NewCounterGroup[AttemptLabels, uint64]("billing_attempts", metrics.CounterConfig{})
