package workflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	"encore.app/billing/business/invoice"
	cyclemock "encore.app/billing/mocks/business/cycle_business"
	"encore.app/billing/model"
)

func TestRunBillingCycleActivity(t *testing.T) {
	testCases := []struct {
		name          string
		setDeps       bool
		mockResult    *model.CycleResult
		mockError     error
		expectCall    bool
		expectedError string
	}{
		{
			name:       "success",
			setDeps:    true,
			mockResult: &model.CycleResult{CycleID: "manual-1", Fetched: 3, Paid: []int32{1, 2}, Pending: []int32{3}},
			expectCall: true,
		},
		{
			name:          "cycle_fails",
			setDeps:       true,
			mockError:     errors.New("boom"),
			expectCall:    true,
			expectedError: "billing cycle failed",
		},
		{
			name:          "dependencies_missing",
			expectedError: "activity dependencies not initialized",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBiz := cyclemock.NewMockBusiness(ctrl)
			if tc.setDeps {
				SetActivityDependencies(mockBiz)
			} else {
				activityDeps = nil
			}
			t.Cleanup(func() { SetActivityDependencies(nil) })

			if tc.expectCall {
				mockBiz.EXPECT().RunCycle(gomock.Any(), "manual-1").Return(tc.mockResult, tc.mockError).Times(1)
			}

			var ts testsuite.WorkflowTestSuite
			env := ts.NewTestActivityEnvironment()
			env.RegisterActivity(RunBillingCycleActivity)

			fut, err := env.ExecuteActivity(RunBillingCycleActivity, "manual-1")
			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)

			var result model.CycleResult
			require.NoError(t, fut.Get(&result))
			assert.Equal(t, tc.mockResult.Paid, result.Paid)
			assert.Equal(t, tc.mockResult.Pending, result.Pending)
		})
	}
}

func TestRunBillingCycleActivityCycleInProgressIsRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBiz := cyclemock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockBiz)
	t.Cleanup(func() { SetActivityDependencies(nil) })

	mockBiz.EXPECT().RunCycle(gomock.Any(), "scheduled-2026-11-01").Return(nil, invoice.ErrCycleInProgress)

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()
	env.RegisterActivity(RunBillingCycleActivity)

	_, err := env.ExecuteActivity(RunBillingCycleActivity, "scheduled-2026-11-01")

	var appErr *temporal.ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrTypeCycleInProgress, appErr.Type())
	assert.False(t, appErr.NonRetryable())
}
