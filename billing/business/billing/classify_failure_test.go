package billing

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyFailure(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected model.BillingStatus
	}{
		{
			name:     "customer_not_found",
			err:      model.CustomerNotFound("get_customer", 1),
			expected: model.BillingStatusUnknownUser,
		},
		{
			name:     "currency_mismatch",
			err:      model.CurrencyMismatch("charge", errors.New("EUR vs DKK")),
			expected: model.BillingStatusUnsupportedCurrency,
		},
		{
			name:     "network",
			err:      model.NetworkFailure("charge", errors.New("connection reset")),
			expected: model.BillingStatusCommunicationProblem,
		},
		{
			name:     "other_kind",
			err:      model.NewChargeError(model.FailureOther, "charge", errors.New("bad request")),
			expected: model.BillingStatusGeneralFailure,
		},
		{
			name:     "wrapped_charge_error",
			err:      fmt.Errorf("attempt 1: %w", model.CustomerNotFound("charge", 3)),
			expected: model.BillingStatusUnknownUser,
		},
		{
			name:     "deadline_exceeded",
			err:      context.DeadlineExceeded,
			expected: model.BillingStatusCommunicationProblem,
		},
		{
			name:     "net_error",
			err:      timeoutError{},
			expected: model.BillingStatusCommunicationProblem,
		},
		{
			name:     "encore_unavailable",
			err:      &errs.Error{Code: errs.Unavailable, Message: "upstream down"},
			expected: model.BillingStatusCommunicationProblem,
		},
		{
			name:     "context_canceled",
			err:      context.Canceled,
			expected: model.BillingStatusGeneralFailure,
		},
		{
			name:     "unclassified",
			err:      errors.New("something else"),
			expected: model.BillingStatusGeneralFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			first := ClassifyFailure(tc.err)
			assert.Equal(t, tc.expected, first)
			assert.Equal(t, first, ClassifyFailure(tc.err))
		})
	}
}
