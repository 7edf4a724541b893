// Package payment creates Stripe payment intents for order totals. No money
// moves in this demo: without an API key the client hands back a stub secret
// so the checkout flow still completes.
package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/paymentintent"
)

type Intent struct {
	ClientSecret string `json:"clientSecret"`
}

type Client struct {
	enabled bool
}

func NewClient(apiKey string) *Client {
	if apiKey == "" {
		return &Client{}
	}
	stripe.Key = apiKey
	return &Client{enabled: true}
}

// CreateIntent creates a payment intent for a display-currency amount,
// converted to cents. ref identifies the order being paid.
func (c *Client) CreateIntent(_ context.Context, amount float64, ref string) (Intent, error) {
	if !c.enabled {
		return Intent{ClientSecret: "pi_stub_" + ref}, nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(Cents(amount)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("order_ref", ref)

	pi, err := paymentintent.New(params)
	if err != nil {
		return Intent{}, fmt.Errorf("create payment intent: %w", err)
	}
	return Intent{ClientSecret: pi.ClientSecret}, nil
}

// Cents converts a display amount to integer cents, rounding half away from
// zero.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
