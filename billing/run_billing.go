package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"encore.dev/rlog"
)

// manualRunTimeout bounds a cycle started through the API.
const manualRunTimeout = time.Hour

type RunBillingRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
}

type RunBillingResponse struct {
	CycleID string `json:"cycle_id"`
}

// RunBilling starts one billing cycle over every pending invoice without
// waiting for it to finish. Progress is visible through the billing logs of
// the returned cycle.
//
//encore:api public path=/v1/billing/runs method=POST tag:idempotency
func (s *Service) RunBilling(ctx context.Context, req *RunBillingRequest) (*RunBillingResponse, error) {
	cycleID := "manual-" + uuid.NewString()

	runAsync("run_billing_cycle", manualRunTimeout, func(ctx context.Context) error {
		_, err := s.cycles.RunCycle(ctx, cycleID)
		return err
	})

	rlog.Info("manual billing cycle started", "cycle_id", cycleID, "idempotency_key", req.IdempotencyKey)
	return &RunBillingResponse{CycleID: cycleID}, nil
}
