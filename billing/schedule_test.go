package billing

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"

	"encore.dev/beta/errs"

	"encore.app/billing/workflow"
)

// schedulerStateValue stands in for the encoded result of a workflow query.
type schedulerStateValue struct {
	state workflow.SchedulerState
	err   error
}

func (v schedulerStateValue) HasValue() bool { return true }

func (v schedulerStateValue) Get(valuePtr interface{}) error {
	if v.err != nil {
		return v.err
	}
	*valuePtr.(*workflow.SchedulerState) = v.state
	return nil
}

func TestStartSchedule(t *testing.T) {
	testCases := []struct {
		name              string
		startDay          int
		mockTemporalError error
		expectedError     string
		expectRunning     bool
	}{
		{
			name:     "starts_scheduler",
			startDay: 15,
		},
		{
			name:              "already_running_is_not_an_error",
			startDay:          15,
			mockTemporalError: &serviceerror.WorkflowExecutionAlreadyStarted{Message: "workflow execution already started"},
			expectRunning:     true,
		},
		{
			name:              "temporal_unavailable",
			startDay:          1,
			mockTemporalError: errors.New("connection refused"),
			expectedError:     "failed to start recurring billing",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockTemporal := mocks.NewClient(t)
			service := &Service{
				temporal:  mockTemporal,
				taskQueue: "recurring-billing",
			}

			mockTemporal.On("ExecuteWorkflow",
				mock.Anything,
				mock.MatchedBy(func(opts client.StartWorkflowOptions) bool {
					return opts.ID == workflow.RecurringBillingWorkflowID &&
						opts.TaskQueue == "recurring-billing" &&
						opts.WorkflowExecutionErrorWhenAlreadyStarted
				}),
				mock.Anything,
				mock.MatchedBy(func(params workflow.RecurringBillingParams) bool {
					return params.StartDay == tc.startDay
				}),
			).Return(nil, tc.mockTemporalError).Once()

			resp, err := service.StartSchedule(context.Background(), &StartScheduleRequest{StartDay: tc.startDay})

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Equal(t, errs.Unavailable, errs.Code(err))
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, workflow.RecurringBillingWorkflowID, resp.WorkflowID)
			assert.Equal(t, tc.expectRunning, resp.AlreadyRunning)
		})
	}
}

func TestStartScheduleRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		startDay      int
		expectedError string
	}{
		{name: "first_day", startDay: 1},
		{name: "last_day", startDay: 31},
		{name: "zero", startDay: 0, expectedError: "min"},
		{name: "thirty_two", startDay: 32, expectedError: "max"},
		{name: "negative", startDay: -3, expectedError: "min"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := (&StartScheduleRequest{StartDay: tc.startDay}).Validate()
			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Equal(t, errs.InvalidArgument, errs.Code(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStartRecurringBillingRejectsInvalidStartDay(t *testing.T) {
	for _, startDay := range []int{0, -1, 32} {
		t.Run(fmt.Sprintf("start_day_%d", startDay), func(t *testing.T) {
			// the client has no expectations: no workflow may be started
			mockTemporal := mocks.NewClient(t)
			service := &Service{temporal: mockTemporal, taskQueue: "recurring-billing"}

			resp, err := service.startRecurringBilling(context.Background(), startDay)

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Equal(t, errs.InvalidArgument, errs.Code(err))
			mockTemporal.AssertNotCalled(t, "ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestValidateStartDay(t *testing.T) {
	for _, startDay := range []int{1, 15, 28, 31} {
		assert.NoError(t, validateStartDay(startDay), "start day %d", startDay)
	}
	for _, startDay := range []int{0, 32, 100} {
		assert.Error(t, validateStartDay(startDay), "start day %d", startDay)
	}
}

func TestGetSchedule(t *testing.T) {
	next := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		queryValue    schedulerStateValue
		queryError    error
		expectedError string
		expectedCode  errs.ErrCode
	}{
		{
			name: "returns_scheduler_state",
			queryValue: schedulerStateValue{state: workflow.SchedulerState{
				Status:          workflow.SchedulerStatusScheduled,
				StartDay:        15,
				NextRun:         &next,
				CyclesCompleted: 3,
			}},
		},
		{
			name:          "not_running",
			queryError:    serviceerror.NewNotFound("workflow not found"),
			expectedError: "recurring billing is not running",
			expectedCode:  errs.NotFound,
		},
		{
			name:          "query_fails",
			queryError:    errors.New("deadline exceeded"),
			expectedError: "failed to query recurring billing",
			expectedCode:  errs.Unavailable,
		},
		{
			name:          "decode_fails",
			queryValue:    schedulerStateValue{err: errors.New("bad payload")},
			expectedError: "failed to decode scheduler state",
			expectedCode:  errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockTemporal := mocks.NewClient(t)
			service := &Service{temporal: mockTemporal}

			var value interface{}
			if tc.queryError == nil {
				value = tc.queryValue
			}
			mockTemporal.On("QueryWorkflow",
				mock.Anything,
				workflow.RecurringBillingWorkflowID,
				"",
				workflow.SchedulerStateQuery,
			).Return(value, tc.queryError).Once()

			resp, err := service.GetSchedule(context.Background())

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, workflow.SchedulerStatusScheduled, resp.State.Status)
			assert.Equal(t, 15, resp.State.StartDay)
			assert.Equal(t, 3, resp.State.CyclesCompleted)
			require.NotNil(t, resp.State.NextRun)
			assert.True(t, next.Equal(*resp.State.NextRun))
		})
	}
}

func TestStopSchedule(t *testing.T) {
	testCases := []struct {
		name          string
		request       *StopScheduleRequest
		signalError   error
		expectedError string
		expectedCode  errs.ErrCode
	}{
		{
			name:    "signals_stop",
			request: &StopScheduleRequest{Reason: "end of contract"},
		},
		{
			name:          "not_running",
			request:       &StopScheduleRequest{},
			signalError:   serviceerror.NewNotFound("workflow not found"),
			expectedError: "recurring billing is not running",
			expectedCode:  errs.NotFound,
		},
		{
			name:          "signal_fails",
			request:       &StopScheduleRequest{},
			signalError:   errors.New("connection reset"),
			expectedError: "failed to stop recurring billing",
			expectedCode:  errs.Unavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockTemporal := mocks.NewClient(t)
			service := &Service{temporal: mockTemporal}

			mockTemporal.On("SignalWorkflow",
				mock.Anything,
				workflow.RecurringBillingWorkflowID,
				"",
				workflow.StopSchedulerSignalName,
				mock.MatchedBy(func(signal workflow.StopSchedulerSignal) bool {
					return signal.Reason == tc.request.Reason
				}),
			).Return(tc.signalError).Once()

			resp, err := service.StopSchedule(context.Background(), tc.request)

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.True(t, resp.Stopping)
			assert.Equal(t, workflow.RecurringBillingWorkflowID, resp.WorkflowID)
		})
	}
}
