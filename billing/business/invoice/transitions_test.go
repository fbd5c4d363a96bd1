package invoice

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/domain/state_machine"
	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

func TestFetchForProcessing(t *testing.T) {
	testCases := []struct {
		name          string
		limit         int32
		mockRows      []invoices.Invoice
		mockError     error
		expectedIDs   []int32
		expectedError string
	}{
		{
			name:  "claims_batch",
			limit: 2,
			mockRows: []invoices.Invoice{
				{ID: 1, CustomerID: 10, Currency: "EUR", Value: decimal.RequireFromString("12.50"), Status: "processing"},
				{ID: 2, CustomerID: 11, Currency: "DKK", Value: decimal.RequireFromString("300"), Status: "processing"},
			},
			expectedIDs: []int32{1, 2},
		},
		{
			name:        "nothing_pending",
			limit:       50,
			expectedIDs: []int32{},
		},
		{
			name:          "claim_fails",
			limit:         50,
			mockError:     errors.New("failed to claim pending invoices"),
			expectedError: "failed to claim pending invoices",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStateMachine := state_machine.NewMockStateMachine(ctrl)
			business := &business{stateMachine: mockStateMachine}

			mockStateMachine.EXPECT().ClaimForProcessing(gomock.Any(), tc.limit).Return(tc.mockRows, tc.mockError)

			result, err := business.FetchForProcessing(context.Background(), tc.limit)

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			ids := make([]int32, len(result))
			for i, inv := range result {
				ids[i] = inv.ID
				assert.Equal(t, model.InvoiceStatusProcessing, inv.Status)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func TestFetchForProcessingKeepsAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStateMachine := state_machine.NewMockStateMachine(ctrl)
	business := &business{stateMachine: mockStateMachine}

	mockStateMachine.EXPECT().ClaimForProcessing(gomock.Any(), int32(1)).Return([]invoices.Invoice{
		{
			ID:         4,
			CustomerID: 9,
			Currency:   "SEK",
			Value:      decimal.RequireFromString("99.95"),
			Status:     "processing",
			CreatedAt:  pgtype.Timestamptz{Valid: true},
		},
	}, nil)

	result, err := business.FetchForProcessing(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int32(9), result[0].CustomerID)
	assert.True(t, model.MustMoney("99.95", model.SEK).Equal(result[0].Amount))
}

func TestMarkTransitions(t *testing.T) {
	testCases := []struct {
		name             string
		ids              []int32
		mark             func(b *business, ctx context.Context, ids []int32) error
		to               model.InvoiceStatus
		mockUpdated      int64
		mockError        error
		expectTransition bool
		expectedError    string
	}{
		{
			name:             "mark_paid",
			ids:              []int32{1, 2, 3},
			mark:             (*business).MarkPaid,
			to:               model.InvoiceStatusPaid,
			mockUpdated:      3,
			expectTransition: true,
		},
		{
			name:             "mark_pending",
			ids:              []int32{4},
			mark:             (*business).MarkPending,
			to:               model.InvoiceStatusPending,
			mockUpdated:      1,
			expectTransition: true,
		},
		{
			name:             "partial_update_is_not_an_error",
			ids:              []int32{1, 2},
			mark:             (*business).MarkPaid,
			to:               model.InvoiceStatusPaid,
			mockUpdated:      1,
			expectTransition: true,
		},
		{
			name: "empty_ids_skip_state_machine",
			ids:  nil,
			mark: (*business).MarkPending,
			to:   model.InvoiceStatusPending,
		},
		{
			name:             "transition_fails",
			ids:              []int32{5},
			mark:             (*business).MarkPaid,
			to:               model.InvoiceStatusPaid,
			mockError:        errors.New("failed to commit state transition"),
			expectTransition: true,
			expectedError:    "failed to commit state transition",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStateMachine := state_machine.NewMockStateMachine(ctrl)
			business := &business{stateMachine: mockStateMachine}

			if tc.expectTransition {
				mockStateMachine.EXPECT().
					Transition(gomock.Any(), tc.ids, tc.to).
					Return(tc.mockUpdated, tc.mockError)
			}

			err := tc.mark(business, context.Background(), tc.ids)

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReleaseStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStateMachine := state_machine.NewMockStateMachine(ctrl)
	business := &business{stateMachine: mockStateMachine}

	mockStateMachine.EXPECT().ReleaseProcessing(gomock.Any(), StaleAfter).Return(int64(4), nil)

	released, err := business.ReleaseStale(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), released)
}
