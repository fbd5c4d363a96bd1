package model

type Customer struct {
	ID               int32    `json:"id"`
	Currency         Currency `json:"currency"`
	StripeCustomerID *string  `json:"stripe_customer_id,omitempty"`
}
