package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		name     string
		from     model.InvoiceStatus
		to       model.InvoiceStatus
		expected bool
	}{
		{name: "pending_to_processing", from: model.InvoiceStatusPending, to: model.InvoiceStatusProcessing, expected: true},
		{name: "processing_to_paid", from: model.InvoiceStatusProcessing, to: model.InvoiceStatusPaid, expected: true},
		{name: "processing_to_pending", from: model.InvoiceStatusProcessing, to: model.InvoiceStatusPending, expected: true},
		{name: "pending_to_paid", from: model.InvoiceStatusPending, to: model.InvoiceStatusPaid, expected: false},
		{name: "paid_to_pending", from: model.InvoiceStatusPaid, to: model.InvoiceStatusPending, expected: false},
		{name: "paid_to_processing", from: model.InvoiceStatusPaid, to: model.InvoiceStatusProcessing, expected: false},
		{name: "unknown_status", from: model.InvoiceStatus("void"), to: model.InvoiceStatusPaid, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CanTransition(tc.from, tc.to))
		})
	}
}

func TestPartitionEligible(t *testing.T) {
	rows := []invoices.Invoice{
		{ID: 1, Status: string(model.InvoiceStatusProcessing)},
		{ID: 2, Status: string(model.InvoiceStatusPaid)},
		{ID: 3, Status: string(model.InvoiceStatusPending)},
		{ID: 4, Status: string(model.InvoiceStatusProcessing)},
	}

	t.Run("to_paid", func(t *testing.T) {
		eligible, rejected := partitionEligible(rows, model.InvoiceStatusPaid)
		assert.Equal(t, []int32{1, 4}, eligible)
		require.Len(t, rejected, 1)
		assert.Equal(t, int32(3), rejected[0].ID)
	})

	t.Run("to_pending", func(t *testing.T) {
		eligible, rejected := partitionEligible(rows, model.InvoiceStatusPending)
		assert.Equal(t, []int32{1, 4}, eligible)
		require.Len(t, rejected, 1)
		assert.Equal(t, int32(2), rejected[0].ID)
	})

	t.Run("empty", func(t *testing.T) {
		eligible, rejected := partitionEligible(nil, model.InvoiceStatusPaid)
		assert.Empty(t, eligible)
		assert.Empty(t, rejected)
	})
}

type failingBeginner struct{}

func (failingBeginner) Begin(context.Context) (pgx.Tx, error) {
	return nil, errors.New("connection refused")
}

func TestTransition(t *testing.T) {
	t.Run("no_ids_is_noop", func(t *testing.T) {
		sm := &InvoiceStateMachine{}
		updated, err := sm.Transition(context.Background(), nil, model.InvoiceStatusPaid)
		assert.NoError(t, err)
		assert.Zero(t, updated)
	})

	t.Run("begin_fails", func(t *testing.T) {
		sm := &InvoiceStateMachine{db: failingBeginner{}}
		_, err := sm.Transition(context.Background(), []int32{1}, model.InvoiceStatusPaid)
		require.Error(t, err)
		assert.Equal(t, errs.Internal, errs.Code(err))
	})
}

func TestClaimForProcessingRejectsNonPositiveLimit(t *testing.T) {
	sm := &InvoiceStateMachine{}
	_, err := sm.ClaimForProcessing(context.Background(), 0)
	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, errs.Code(err))
}

func TestReleaseProcessingRejectsNonPositiveAge(t *testing.T) {
	sm := &InvoiceStateMachine{}
	_, err := sm.ReleaseProcessing(context.Background(), 0)
	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, errs.Code(err))
}
