package billinglog

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/repository/billinglog_repo"
	"encore.app/billing/model"
	"encore.app/billing/repository/billinglogs"
)

func TestListBillingLogs(t *testing.T) {
	invoiceID := int32(9)

	testCases := []struct {
		name           string
		invoiceID      *int32
		expectedFilter pgtype.Int4
		mockRows       []billinglogs.BillingLog
		mockListErr    error
		mockCountErr   error
		expectCount    bool
		expectedError  string
	}{
		{
			name:           "all_logs",
			expectedFilter: pgtype.Int4{},
			mockRows: []billinglogs.BillingLog{
				{ID: 2, CycleID: "c2", InvoiceID: 9, Currency: "EUR", Amount: decimal.NewFromInt(5), Status: "ACCEPTED"},
				{ID: 1, CycleID: "c1", InvoiceID: 8, Currency: "USD", Amount: decimal.NewFromInt(7), Status: "DECLINED"},
			},
			expectCount: true,
		},
		{
			name:           "filtered_by_invoice",
			invoiceID:      &invoiceID,
			expectedFilter: pgtype.Int4{Int32: 9, Valid: true},
			mockRows: []billinglogs.BillingLog{
				{ID: 2, CycleID: "c2", InvoiceID: 9, Currency: "EUR", Amount: decimal.NewFromInt(5), Status: "UNKNOWN_USER"},
			},
			expectCount: true,
		},
		{
			name:           "list_fails",
			expectedFilter: pgtype.Int4{},
			mockListErr:    errors.New("db down"),
			expectedError:  "failed to list billing logs",
		},
		{
			name:           "count_fails",
			expectedFilter: pgtype.Int4{},
			mockCountErr:   errors.New("db down"),
			expectCount:    true,
			expectedError:  "failed to count billing logs",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := billinglog_repo.NewMockQuerier(ctrl)
			business := &business{billingLogRepo: mockRepo}

			mockRepo.EXPECT().
				ListBillingLogs(gomock.Any(), billinglogs.ListBillingLogsParams{
					InvoiceID: tc.expectedFilter,
					Lim:       20,
					Off:       0,
				}).
				Return(tc.mockRows, tc.mockListErr)
			if tc.expectCount {
				mockRepo.EXPECT().
					CountBillingLogs(gomock.Any(), tc.expectedFilter).
					Return(int64(len(tc.mockRows)), tc.mockCountErr)
			}

			result, total, err := business.ListBillingLogs(context.Background(), tc.invoiceID, 20, 0)

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(len(tc.mockRows)), total)
			require.Len(t, result, len(tc.mockRows))
			for i, row := range tc.mockRows {
				assert.Equal(t, row.InvoiceID, result[i].InvoiceID)
				assert.Equal(t, model.BillingStatus(row.Status), result[i].Status)
				assert.Equal(t, model.Currency(row.Currency), result[i].ChargedAmount.Currency)
			}
		})
	}
}
