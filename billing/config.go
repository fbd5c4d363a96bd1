package billing

import (
	"time"

	"encore.dev/config"
)

type Config struct {
	// StartDay is the day of the month the recurring billing runs on.
	StartDay int
	// AutoSchedule starts the recurring billing workflow when the service boots.
	AutoSchedule bool

	BatchSize int
	Workers   int

	PaymentProvider       string
	SimulatedAcceptRate   float64
	PaymentTimeoutSeconds int
	RateCacheTTLSeconds   int

	TemporalHostPort  string
	TemporalNamespace string
	TaskQueue         string
}

var cfg = config.Load[*Config]()

var secrets struct {
	StripeSecretKey string
}

func seconds(n int, fallback time.Duration) time.Duration {
	if n <= 0 {
		return fallback
	}
	return time.Duration(n) * time.Second
}
