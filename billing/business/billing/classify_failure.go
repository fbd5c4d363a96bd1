package billing

import (
	"context"
	"errors"
	"net"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// ClassifyFailure maps a conversion or charge error to the status recorded in
// the billing log. It depends only on the error.
func ClassifyFailure(err error) model.BillingStatus {
	var chargeErr *model.ChargeError
	if errors.As(err, &chargeErr) {
		switch chargeErr.Kind {
		case model.FailureCustomerNotFound:
			return model.BillingStatusUnknownUser
		case model.FailureCurrencyMismatch:
			return model.BillingStatusUnsupportedCurrency
		case model.FailureNetwork:
			return model.BillingStatusCommunicationProblem
		default:
			return model.BillingStatusGeneralFailure
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return model.BillingStatusCommunicationProblem
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return model.BillingStatusCommunicationProblem
	}

	switch errs.Code(err) {
	case errs.Unavailable, errs.DeadlineExceeded:
		return model.BillingStatusCommunicationProblem
	}
	return model.BillingStatusGeneralFailure
}
