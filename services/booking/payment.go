package booking

import (
	"context"
	"fmt"

	"emviapp/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentProvider is the external payment authority the engine books against.
type PaymentProvider interface {
	// CreatePaymentIntent requests an authorized-but-not-captured charge.
	CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntentRef, error)
	// CancelPaymentIntent voids an intent whose booking never landed.
	CancelPaymentIntent(ctx context.Context, id string) error
}

// StripePaymentProvider implements PaymentProvider against the Stripe API.
// stripe.Key must be set before use (done in main).
type StripePaymentProvider struct {
	logger *zap.Logger
}

// NewStripePaymentProvider creates a Stripe-backed PaymentProvider.
func NewStripePaymentProvider(logger *zap.Logger) *StripePaymentProvider {
	return &StripePaymentProvider{logger: logger}
}

// CreatePaymentIntent creates a manual-capture PaymentIntent for the booking amount.
func (p *StripePaymentProvider) CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntentRef, error) {
	if req.AmountCents <= 0 {
		return nil, fmt.Errorf("invalid payment amount: %d", req.AmountCents)
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountCents),
		Currency:      stripe.String(req.Currency),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
	}
	params.Context = ctx
	if req.PaymentMethodID != "" {
		params.PaymentMethod = stripe.String(req.PaymentMethodID)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.AddMetadata("customer_id", req.CustomerID)

	pi, err := paymentintent.New(params)
	if err != nil {
		p.logger.Error("stripe payment intent creation failed",
			zap.String("customerId", req.CustomerID),
			zap.Int64("amountCents", req.AmountCents),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	p.logger.Info("payment intent created",
		zap.String("paymentIntentId", pi.ID),
		zap.Int64("amountCents", req.AmountCents))

	return &models.PaymentIntentRef{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountCents:  pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
	}, nil
}

// CancelPaymentIntent voids an intent. Used when the booking insert loses the
// slot race after the intent was already created.
func (p *StripePaymentProvider) CancelPaymentIntent(ctx context.Context, id string) error {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx
	if _, err := paymentintent.Cancel(id, params); err != nil {
		return fmt.Errorf("failed to cancel payment intent %s: %w", id, err)
	}
	return nil
}
