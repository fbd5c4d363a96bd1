package invoice

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/mocks/repository/invoice_repo"
	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

func TestGetInvoice(t *testing.T) {
	testCases := []struct {
		name         string
		id           int32
		mockReturn   invoices.Invoice
		mockError    error
		expectedCode errs.ErrCode
	}{
		{
			name: "happy_case",
			id:   1,
			mockReturn: invoices.Invoice{
				ID:         1,
				CustomerID: 2,
				Currency:   "GBP",
				Value:      decimal.RequireFromString("42.10"),
				Status:     "paid",
			},
		},
		{
			name:         "not_found",
			id:           2,
			mockError:    pgx.ErrNoRows,
			expectedCode: errs.NotFound,
		},
		{
			name:         "database_error",
			id:           3,
			mockError:    errors.New("boom"),
			expectedCode: errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := invoice_repo.NewMockQuerier(ctrl)
			business := &business{invoiceRepo: mockRepo}

			mockRepo.EXPECT().GetInvoice(gomock.Any(), tc.id).Return(tc.mockReturn, tc.mockError)

			result, err := business.GetInvoice(context.Background(), tc.id)

			if tc.expectedCode != errs.OK {
				require.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.id, result.ID)
			assert.Equal(t, model.InvoiceStatusPaid, result.Status)
			assert.True(t, model.MustMoney("42.10", model.GBP).Equal(result.Amount))
		})
	}
}

func TestListInvoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := invoice_repo.NewMockQuerier(ctrl)
	business := &business{invoiceRepo: mockRepo}

	mockRepo.EXPECT().
		ListInvoices(gomock.Any(), invoices.ListInvoicesParams{Limit: 2, Offset: 0}).
		Return([]invoices.Invoice{
			{ID: 1, Currency: "EUR", Value: decimal.NewFromInt(10), Status: "pending"},
			{ID: 2, Currency: "USD", Value: decimal.NewFromInt(20), Status: "paid"},
		}, nil)
	mockRepo.EXPECT().CountInvoices(gomock.Any()).Return(int64(7), nil)

	result, total, err := business.ListInvoices(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, result, 2)
	assert.Equal(t, model.InvoiceStatusPending, result[0].Status)
	assert.Equal(t, model.USD, result[1].Amount.Currency)
}
