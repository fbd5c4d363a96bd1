package payment

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v82"

	"encore.dev/rlog"

	"encore.app/billing/business/customer"
	"encore.app/billing/model"
)

const opStripeCharge = "stripe_charge"

type paymentIntentCreator interface {
	Create(ctx context.Context, params *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error)
}

type stripeProvider struct {
	paymentIntents   paymentIntentCreator
	customerBusiness customer.Business
	timeout          time.Duration
}

// NewStripeProvider charges invoices off-session against the customer's
// default payment method. Every call is bounded by timeout.
func NewStripeProvider(secretKey string, customerBusiness customer.Business, timeout time.Duration) Provider {
	sc := stripe.NewClient(secretKey, nil)
	return &stripeProvider{
		paymentIntents:   sc.V1PaymentIntents,
		customerBusiness: customerBusiness,
		timeout:          timeout,
	}
}

func (p *stripeProvider) Charge(ctx context.Context, cycleID string, invoice model.Invoice) (bool, error) {
	customer, err := p.customerBusiness.GetCustomer(ctx, invoice.CustomerID)
	if err != nil {
		return false, err
	}
	if customer.StripeCustomerID == nil || *customer.StripeCustomerID == "" {
		return false, model.CustomerNotFound(opStripeCharge, invoice.CustomerID)
	}
	if customer.Currency != invoice.Amount.Currency {
		return false, model.CurrencyMismatch(opStripeCharge,
			fmt.Errorf("invoice %d is in %s, customer %d pays in %s",
				invoice.ID, invoice.Amount.Currency, customer.ID, customer.Currency))
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	params := &stripe.PaymentIntentCreateParams{
		Amount:     stripe.Int64(invoice.Amount.Cents()),
		Currency:   stripe.String(strings.ToLower(invoice.Amount.Currency.String())),
		Customer:   stripe.String(*customer.StripeCustomerID),
		OffSession: stripe.Bool(true),
		Confirm:    stripe.Bool(true),
		Metadata: map[string]string{
			"invoice_id":  strconv.Itoa(int(invoice.ID)),
			"customer_id": strconv.Itoa(int(invoice.CustomerID)),
		},
	}
	params.SetIdempotencyKey(idempotencyKey(cycleID, invoice))

	intent, err := p.paymentIntents.Create(ctx, params)
	if err != nil {
		return classifyStripeError(invoice, err)
	}

	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return true, nil
	case stripe.PaymentIntentStatusProcessing:
		// Not settled yet; the outcome is unknown, not a decline.
		rlog.Warn("payment intent still processing",
			"invoice_id", invoice.ID,
			"payment_intent_id", intent.ID,
		)
		return false, model.NetworkFailure(opStripeCharge,
			fmt.Errorf("payment intent %s is still processing", intent.ID))
	default:
		rlog.Info("payment intent not completed",
			"invoice_id", invoice.ID,
			"payment_intent_id", intent.ID,
			"status", string(intent.Status),
		)
		return false, nil
	}
}

// idempotencyKey is unique per invoice and billing attempt. Stripe replays the
// stored response for a reused key, so a key without the cycle would return
// last month's decline forever.
func idempotencyKey(cycleID string, invoice model.Invoice) string {
	return fmt.Sprintf("invoice-%d-%s-%s", invoice.ID, invoice.Amount.Value.StringFixed(2), cycleID)
}

// classifyStripeError turns a failed PaymentIntent call into a decline or a
// ChargeError of the matching kind.
func classifyStripeError(invoice model.Invoice, err error) (bool, error) {
	if errors.Is(err, context.DeadlineExceeded) {
		return false, model.NetworkFailure(opStripeCharge, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return false, model.NetworkFailure(opStripeCharge, err)
	}

	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return false, model.NewChargeError(model.FailureOther, opStripeCharge, err)
	}

	switch {
	case stripeErr.Type == stripe.ErrorTypeCard,
		stripeErr.Code == stripe.ErrorCodeCardDeclined,
		stripeErr.Code == stripe.ErrorCodeAuthenticationRequired:
		rlog.Info("charge declined",
			"invoice_id", invoice.ID,
			"stripe_error_code", string(stripeErr.Code),
		)
		return false, nil
	case stripeErr.Code == stripe.ErrorCodeResourceMissing && stripeErr.Param == "customer":
		return false, model.CustomerNotFound(opStripeCharge, invoice.CustomerID)
	case stripeErr.Param == "currency":
		return false, model.CurrencyMismatch(opStripeCharge, err)
	case stripeErr.HTTPStatusCode == 0,
		stripeErr.HTTPStatusCode == http.StatusTooManyRequests,
		stripeErr.HTTPStatusCode >= http.StatusInternalServerError,
		stripeErr.Type == stripe.ErrorTypeAPI:
		return false, model.NetworkFailure(opStripeCharge, err)
	default:
		return false, model.NewChargeError(model.FailureOther, opStripeCharge, err)
	}
}
