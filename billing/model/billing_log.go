package model

import (
	"time"
)

// BillingLog is the immutable audit record of one charge attempt.
type BillingLog struct {
	ID            int64         `json:"id"`
	CycleID       string        `json:"cycle_id"`
	CustomerID    int32         `json:"customer_id"`
	InvoiceID     int32         `json:"invoice_id"`
	ChargedAmount Money         `json:"charged_amount"`
	Status        BillingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

type BillingStatus string

const (
	BillingStatusAccepted             BillingStatus = "ACCEPTED"
	BillingStatusDeclined             BillingStatus = "DECLINED"
	BillingStatusUnknownUser          BillingStatus = "UNKNOWN_USER"
	BillingStatusUnsupportedCurrency  BillingStatus = "UNSUPPORTED_CURRENCY"
	BillingStatusCommunicationProblem BillingStatus = "COMMUNICATION_PROBLEM"
	BillingStatusGeneralFailure       BillingStatus = "GENERAL_FAILURE"
)

// CycleResult summarizes one run of the billing job.
type CycleResult struct {
	CycleID  string  `json:"cycle_id"`
	Released int64   `json:"released"`
	Fetched  int     `json:"fetched"`
	Paid     []int32 `json:"paid"`
	Pending  []int32 `json:"pending"`
}
