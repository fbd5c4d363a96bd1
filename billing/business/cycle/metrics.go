package cycle

import (
	"encore.dev/metrics"
)

var BillingCycles = metrics.NewCounter[uint64]("billing_cycles_total", metrics.CounterConfig{})
