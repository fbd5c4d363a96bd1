package customer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/repository/customer_repo"
	"encore.app/billing/model"
	"encore.app/billing/repository/customers"
)

func TestListCustomers(t *testing.T) {
	testCases := []struct {
		name          string
		limit         int32
		offset        int32
		mockRows      []customers.Customer
		mockListErr   error
		mockCount     int64
		mockCountErr  error
		expectCount   bool
		expectedError string
	}{
		{
			name:   "happy_case",
			limit:  10,
			offset: 0,
			mockRows: []customers.Customer{
				{ID: 1, Currency: "EUR"},
				{ID: 2, Currency: "SEK"},
			},
			mockCount:   2,
			expectCount: true,
		},
		{
			name:        "empty_page",
			limit:       10,
			offset:      50,
			mockCount:   2,
			expectCount: true,
		},
		{
			name:          "list_fails",
			limit:         10,
			mockListErr:   errors.New("db down"),
			expectedError: "failed to list customers",
		},
		{
			name:          "count_fails",
			limit:         10,
			mockRows:      []customers.Customer{{ID: 1, Currency: "EUR"}},
			mockCountErr:  errors.New("db down"),
			expectCount:   true,
			expectedError: "failed to count customers",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := customer_repo.NewMockQuerier(ctrl)
			business := &business{customerRepo: mockRepo}

			mockRepo.EXPECT().
				ListCustomers(gomock.Any(), customers.ListCustomersParams{Limit: tc.limit, Offset: tc.offset}).
				Return(tc.mockRows, tc.mockListErr)
			if tc.expectCount {
				mockRepo.EXPECT().CountCustomers(gomock.Any()).Return(tc.mockCount, tc.mockCountErr)
			}

			result, total, err := business.ListCustomers(context.Background(), tc.limit, tc.offset)

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.mockCount, total)
			require.Len(t, result, len(tc.mockRows))
			for i, row := range tc.mockRows {
				assert.Equal(t, row.ID, result[i].ID)
				assert.Equal(t, model.Currency(row.Currency), result[i].Currency)
			}
		})
	}
}
