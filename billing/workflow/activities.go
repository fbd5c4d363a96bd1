package workflow

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/billing/business/cycle"
	"encore.app/billing/business/invoice"
	"encore.app/billing/model"
)

// ActivityDependencies are the services activities call into. The worker
// sets them once before it starts polling.
type ActivityDependencies struct {
	CycleBusiness cycle.Business
}

var activityDeps *ActivityDependencies

func SetActivityDependencies(cycleBusiness cycle.Business) {
	activityDeps = &ActivityDependencies{
		CycleBusiness: cycleBusiness,
	}
}

// RunBillingCycleActivity runs one billing cycle over every pending invoice.
func RunBillingCycleActivity(ctx context.Context, cycleID string) (*model.CycleResult, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Starting billing cycle", "cycleID", cycleID)

	if activityDeps == nil || activityDeps.CycleBusiness == nil {
		logger.Error("Billing cycle dependencies not set", "cycleID", cycleID)
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	result, err := activityDeps.CycleBusiness.RunCycle(ctx, cycleID)
	if errors.Is(err, invoice.ErrCycleInProgress) {
		logger.Warn("Another billing cycle is running", "cycleID", cycleID)
		return nil, temporal.NewApplicationError("billing cycle already in progress", ErrTypeCycleInProgress, err)
	}
	if err != nil {
		logger.Error("Billing cycle failed", "cycleID", cycleID, "error", err)
		return nil, temporal.NewNonRetryableApplicationError("billing cycle failed", "BILLING_CYCLE_FAILED", err)
	}

	logger.Info("Successfully completed billing cycle",
		"cycleID", cycleID,
		"fetched", result.Fetched,
		"paid", len(result.Paid),
		"pending", len(result.Pending),
	)
	return result, nil
}
