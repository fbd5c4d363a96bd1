package billing

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/auth"
	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/workflow"
)

type StartScheduleRequest struct {
	StartDay int `json:"start_day" validate:"min=1,max=31"`
}

type StartScheduleResponse struct {
	WorkflowID     string `json:"workflow_id"`
	RunID          string `json:"run_id,omitempty"`
	AlreadyRunning bool   `json:"already_running"`
}

//encore:api public path=/v1/billing/schedule method=POST
func (s *Service) StartSchedule(ctx context.Context, req *StartScheduleRequest) (*StartScheduleResponse, error) {
	resp, err := s.startRecurringBilling(ctx, req.StartDay)
	if errs.Code(err) == errs.InvalidArgument {
		return nil, err
	}
	if err != nil {
		rlog.Error("failed to start recurring billing", "error", err, "start_day", req.StartDay)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to start recurring billing"}
	}
	return resp, nil
}

// Validate implements validation for StartScheduleRequest
func (r *StartScheduleRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

type ScheduleStateResponse struct {
	State workflow.SchedulerState `json:"state"`
}

//encore:api public path=/v1/billing/schedule method=GET
func (s *Service) GetSchedule(ctx context.Context) (*ScheduleStateResponse, error) {
	value, err := s.temporal.QueryWorkflow(ctx, workflow.RecurringBillingWorkflowID, "", workflow.SchedulerStateQuery)
	if err != nil {
		if isWorkflowNotFound(err) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "recurring billing is not running"}
		}
		rlog.Error("failed to query recurring billing", "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to query recurring billing"}
	}

	var state workflow.SchedulerState
	if err := value.Get(&state); err != nil {
		rlog.Error("failed to decode scheduler state", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to decode scheduler state"}
	}

	return &ScheduleStateResponse{State: state}, nil
}

type StopScheduleRequest struct {
	Reason string `query:"reason" validate:"max=255"`
}

type StopScheduleResponse struct {
	WorkflowID string `json:"workflow_id"`
	Stopping   bool   `json:"stopping"`
}

//encore:api public path=/v1/billing/schedule method=DELETE
func (s *Service) StopSchedule(ctx context.Context, req *StopScheduleRequest) (*StopScheduleResponse, error) {
	signal := workflow.StopSchedulerSignal{
		Reason: req.Reason,
	}
	if uid, ok := auth.UserID(); ok {
		signal.RequestedBy = string(uid)
	}

	err := s.temporal.SignalWorkflow(ctx, workflow.RecurringBillingWorkflowID, "", workflow.StopSchedulerSignalName, signal)
	if err != nil {
		if isWorkflowNotFound(err) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "recurring billing is not running"}
		}
		rlog.Error("failed to signal recurring billing", "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to stop recurring billing"}
	}

	rlog.Info("stop requested for recurring billing", "reason", req.Reason)
	return &StopScheduleResponse{
		WorkflowID: workflow.RecurringBillingWorkflowID,
		Stopping:   true,
	}, nil
}

// Validate implements validation for StopScheduleRequest
func (r *StopScheduleRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

// validateStartDay rejects a start day the scheduler could never use.
func validateStartDay(startDay int) error {
	return (&StartScheduleRequest{StartDay: startDay}).Validate()
}

// startRecurringBilling starts the single scheduler workflow. A scheduler that
// is already running is left untouched.
func (s *Service) startRecurringBilling(ctx context.Context, startDay int) (*StartScheduleResponse, error) {
	if err := validateStartDay(startDay); err != nil {
		return nil, err
	}

	options := client.StartWorkflowOptions{
		ID:                                       workflow.RecurringBillingWorkflowID,
		TaskQueue:                                s.taskQueue,
		WorkflowExecutionErrorWhenAlreadyStarted: true,
	}

	params := workflow.RecurringBillingParams{
		StartDay:        startDay,
		MaxCyclesPerRun: workflow.DefaultMaxCyclesPerRun,
	}

	run, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.RecurringBilling, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("recurring billing already running", "workflow_id", workflow.RecurringBillingWorkflowID)
			return &StartScheduleResponse{
				WorkflowID:     workflow.RecurringBillingWorkflowID,
				AlreadyRunning: true,
			}, nil
		}
		return nil, fmt.Errorf("execute workflow %s: %w", workflow.RecurringBillingWorkflowID, err)
	}

	resp := &StartScheduleResponse{WorkflowID: workflow.RecurringBillingWorkflowID}
	if run != nil {
		resp.RunID = run.GetRunID()
	}
	rlog.Info("recurring billing started", "workflow_id", resp.WorkflowID, "run_id", resp.RunID, "start_day", startDay)
	return resp, nil
}

func isWorkflowNotFound(err error) bool {
	var notFound *serviceerror.NotFound
	return errors.As(err, &notFound)
}
