package workflow

import (
	"errors"
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"encore.app/billing/model"
	"encore.app/billing/schedule"
)

const (
	// RecurringBillingWorkflowID is shared by every start request so only one
	// scheduler is ever active.
	RecurringBillingWorkflowID = "recurring-billing"

	DefaultMaxCyclesPerRun = 12

	// ErrTypeInvalidSchedule fails the workflow when no billing date can be
	// computed from its parameters.
	ErrTypeInvalidSchedule = "INVALID_SCHEDULE"
	// ErrTypeCycleInProgress is the retryable failure of an activity that found
	// another cycle holding the cycle lock.
	ErrTypeCycleInProgress = "CYCLE_IN_PROGRESS"
)

type SchedulerStatus string

const (
	SchedulerStatusIdle      SchedulerStatus = "IDLE"
	SchedulerStatusScheduled SchedulerStatus = "SCHEDULED"
	SchedulerStatusRunning   SchedulerStatus = "RUNNING"
	SchedulerStatusStopped   SchedulerStatus = "STOPPED"
)

// RecurringBillingParams configures one run of the scheduler workflow. A run
// continues as new with CyclesCompleted carried over once it has executed
// MaxCyclesPerRun cycles.
type RecurringBillingParams struct {
	StartDay        int       `json:"start_day"`
	NotBefore       time.Time `json:"not_before"`
	MaxCyclesPerRun int       `json:"max_cycles_per_run"`
	CyclesCompleted int       `json:"cycles_completed"`
}

// SchedulerState is what the scheduler-state query returns.
type SchedulerState struct {
	Status          SchedulerStatus    `json:"status"`
	StartDay        int                `json:"start_day"`
	NextRun         *time.Time         `json:"next_run,omitempty"`
	CyclesCompleted int                `json:"cycles_completed"`
	LastCycle       *model.CycleResult `json:"last_cycle,omitempty"`
	LastError       string             `json:"last_error,omitempty"`
}

// RecurringBilling runs a billing cycle on StartDay of every month, capped to
// the last day of shorter months, until it is stopped or cancelled.
func RecurringBilling(ctx workflow.Context, params RecurringBillingParams) (*SchedulerState, error) {
	logger := workflow.GetLogger(ctx)

	maxCycles := params.MaxCyclesPerRun
	if maxCycles <= 0 {
		maxCycles = DefaultMaxCyclesPerRun
	}

	state := &SchedulerState{
		Status:          SchedulerStatusIdle,
		StartDay:        params.StartDay,
		CyclesCompleted: params.CyclesCompleted,
	}
	err := workflow.SetQueryHandler(ctx, SchedulerStateQuery, func() (SchedulerState, error) {
		return *state, nil
	})
	if err != nil {
		return nil, err
	}

	stopCh := workflow.GetSignalChannel(ctx, StopSchedulerSignalName)

	reference := params.NotBefore
	if reference.IsZero() {
		reference = workflow.Now(ctx)
	}

	logger.Info("Starting recurring billing workflow", "startDay", params.StartDay, "notBefore", reference)

	for cycles := 0; ; {
		next, err := schedule.NextScheduledDateFrom(reference, params.StartDay)
		if err != nil {
			// the parameters never change within a run, so waiting cannot help
			logger.Error("Invalid billing schedule", "startDay", params.StartDay, "error", err)
			state.Status = SchedulerStatusStopped
			state.NextRun = nil
			state.LastError = err.Error()
			return state, temporal.NewNonRetryableApplicationError("invalid billing schedule", ErrTypeInvalidSchedule, err)
		}
		state.NextRun = &next
		state.Status = SchedulerStatusScheduled

		wait := max(next.Sub(workflow.Now(ctx)), 0)

		stopped, fired := waitForNextRun(ctx, stopCh, wait)
		if stopped {
			state.Status = SchedulerStatusStopped
			state.NextRun = nil
			logger.Info("Recurring billing stopped", "cyclesCompleted", state.CyclesCompleted)
			return state, nil
		}
		if !fired {
			state.Status = SchedulerStatusStopped
			state.NextRun = nil
			logger.Info("Recurring billing cancelled", "cyclesCompleted", state.CyclesCompleted)
			return state, ctx.Err()
		}
		state.Status = SchedulerStatusRunning
		cycleID := ScheduledCycleID(next)
		logger.Info("Running billing cycle", "cycleID", cycleID)

		var result model.CycleResult
		if err := runBillingCycle(ctx, cycleID).Get(ctx, &result); err != nil {
			logger.Error("Billing cycle failed", "cycleID", cycleID, "error", err)
			state.LastError = err.Error()
		} else {
			logger.Info("Billing cycle completed", "cycleID", cycleID, "paid", len(result.Paid), "pending", len(result.Pending))
			state.LastError = ""
			state.LastCycle = &result
		}
		state.CyclesCompleted++
		cycles++

		// a cycle due today must not fire twice on the same day
		reference = next.AddDate(0, 0, 1)

		if cycles >= maxCycles {
			if stopRequested(stopCh) {
				state.Status = SchedulerStatusStopped
				state.NextRun = nil
				return state, nil
			}
			logger.Info("Continuing recurring billing as new", "cyclesCompleted", state.CyclesCompleted)
			return nil, workflow.NewContinueAsNewError(ctx, RecurringBilling, RecurringBillingParams{
				StartDay:        params.StartDay,
				NotBefore:       reference,
				MaxCyclesPerRun: params.MaxCyclesPerRun,
				CyclesCompleted: state.CyclesCompleted,
			})
		}
	}
}

// ScheduledCycleID names the cycle that runs on date.
func ScheduledCycleID(date time.Time) string {
	return fmt.Sprintf("scheduled-%s", date.UTC().Format(time.DateOnly))
}

// waitForNextRun blocks until the timer fires or a stop signal arrives. Both
// results are false when the workflow itself was cancelled.
func waitForNextRun(ctx workflow.Context, stopCh workflow.ReceiveChannel, wait time.Duration) (stopped, fired bool) {
	timerCtx, cancelTimer := workflow.WithCancel(ctx)
	defer cancelTimer()

	timer := workflow.NewTimer(timerCtx, wait)

	selector := workflow.NewSelector(ctx)
	selector.AddReceive(stopCh, func(c workflow.ReceiveChannel, more bool) {
		var signal StopSchedulerSignal
		c.Receive(ctx, &signal)
		workflow.GetLogger(ctx).Info("Received stop scheduler signal", "reason", signal.Reason, "requestedBy", signal.RequestedBy)
		stopped = true
	})
	selector.AddFuture(timer, func(f workflow.Future) {
		err := f.Get(ctx, nil)
		var canceled *temporal.CanceledError
		if errors.As(err, &canceled) {
			return
		}
		fired = true
	})
	selector.Select(ctx)
	return stopped, fired
}

func stopRequested(stopCh workflow.ReceiveChannel) bool {
	var signal StopSchedulerSignal
	return stopCh.ReceiveAsync(&signal)
}

// runBillingCycle executes the RunBillingCycle activity. A failed cycle is not
// retried: the next cycle settles whatever it left behind. A cycle that could
// not start because another one holds the lock is retried with backoff.
func runBillingCycle(ctx workflow.Context, cycleID string) workflow.Future {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Hour,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    5 * time.Minute,
			BackoffCoefficient: 2,
			MaximumInterval:    time.Hour,
			MaximumAttempts:    8,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, RunBillingCycleActivity, cycleID)
}
