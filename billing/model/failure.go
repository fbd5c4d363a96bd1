package model

import (
	"fmt"
)

// FailureKind tags the reason a charge attempt could not complete.
type FailureKind string

const (
	FailureCustomerNotFound FailureKind = "customer_not_found"
	FailureCurrencyMismatch FailureKind = "currency_mismatch"
	FailureNetwork          FailureKind = "network"
	FailureOther            FailureKind = "other"
)

// ChargeError is returned by the conversion and payment collaborators so the
// billing engine can classify failures without inspecting messages.
type ChargeError struct {
	Kind FailureKind
	Op   string
	Err  error
}

func (e *ChargeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err.Error())
}

func (e *ChargeError) Unwrap() error {
	return e.Err
}

func NewChargeError(kind FailureKind, op string, err error) *ChargeError {
	return &ChargeError{Kind: kind, Op: op, Err: err}
}

func CustomerNotFound(op string, customerID int32) *ChargeError {
	return NewChargeError(FailureCustomerNotFound, op, fmt.Errorf("customer %d not found", customerID))
}

func CurrencyMismatch(op string, err error) *ChargeError {
	return NewChargeError(FailureCurrencyMismatch, op, err)
}

func NetworkFailure(op string, err error) *ChargeError {
	return NewChargeError(FailureNetwork, op, err)
}
