package model

import (
	"time"
)

type Invoice struct {
	ID         int32         `json:"id"`
	CustomerID int32         `json:"customer_id"`
	Amount     Money         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// WithAmount returns a copy of the invoice carrying a different amount. The
// copy is what gets presented to the payment provider after conversion; it is
// never persisted.
func (i Invoice) WithAmount(amount Money) Invoice {
	i.Amount = amount
	return i
}

type InvoiceStatus string

const (
	InvoiceStatusPending    InvoiceStatus = "pending"
	InvoiceStatusProcessing InvoiceStatus = "processing"
	InvoiceStatusPaid       InvoiceStatus = "paid"
)

// InvoiceIDSet holds the ids of invoices charged successfully in a cycle.
type InvoiceIDSet map[int32]struct{}

func (s InvoiceIDSet) Has(id int32) bool {
	_, ok := s[id]
	return ok
}
