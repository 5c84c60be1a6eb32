package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"go.uber.org/zap"
)

var ErrGatewayDisabled = errors.New("payment gateway not configured")

// Gateway creates provider-side payment intents for card deposits.
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, req *IntentRequest) (*IntentResponse, error)
	Enabled() bool
	Name() string
}

type IntentRequest struct {
	Reference   string
	Amount      decimal.Decimal
	Currency    string
	Description string
	Metadata    map[string]string
}

type IntentResponse struct {
	ProviderRef  string
	ClientSecret string
	Status       string
}

type stripeGateway struct {
	client   paymentintent.Client
	currency string
	log      *zap.Logger
}

// NewStripeGateway returns a disabled gateway when secretKey is empty.
func NewStripeGateway(secretKey, currency string, log *zap.Logger) Gateway {
	log = log.With(zap.String("gateway", "stripe"))
	if secretKey == "" {
		return disabledGateway{}
	}
	return &stripeGateway{
		client:   paymentintent.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey},
		currency: strings.ToLower(currency),
		log:      log,
	}
}

func (g *stripeGateway) Name() string  { return "stripe" }
func (g *stripeGateway) Enabled() bool { return true }

func (g *stripeGateway) CreatePaymentIntent(ctx context.Context, req *IntentRequest) (*IntentResponse, error) {
	currency := g.currency
	if req.Currency != "" {
		currency = strings.ToLower(req.Currency)
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(MinorUnits(req.Amount)),
		Currency:    stripe.String(currency),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("reference", req.Reference)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.client.New(params)
	if err != nil {
		g.log.Error("Failed to create payment intent", zap.Error(err), zap.String("reference", req.Reference))
		return nil, fmt.Errorf("create payment intent %s: %w", req.Reference, err)
	}

	g.log.Info("Payment intent created", zap.String("id", pi.ID), zap.String("reference", req.Reference))
	return &IntentResponse{
		ProviderRef:  pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}, nil
}

// MinorUnits converts an amount to cents, rounding half away from zero.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

type disabledGateway struct{}

func (disabledGateway) Name() string  { return "disabled" }
func (disabledGateway) Enabled() bool { return false }

func (disabledGateway) CreatePaymentIntent(context.Context, *IntentRequest) (*IntentResponse, error) {
	return nil, ErrGatewayDisabled
}
