package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"emviapp/config"
	bookingRepo "emviapp/database/repository/booking"
	"emviapp/services/booking"
	"emviapp/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

const maxWebhookBodyBytes = 65536

// StripeWebhookHandler processes payment-provider webhooks that drive booking
// lifecycle transitions.
type StripeWebhookHandler struct {
	Engine booking.BookingEngine
	Logger *zap.Logger
}

// NewStripeWebhookHandler creates a StripeWebhookHandler.
func NewStripeWebhookHandler(engine booking.BookingEngine, logger *zap.Logger) *StripeWebhookHandler {
	return &StripeWebhookHandler{Engine: engine, Logger: logger}
}

// Handle verifies the webhook signature and applies the event.
// payment_intent.succeeded confirms the matching pending_payment booking;
// payment_intent.canceled releases it.
func (h *StripeWebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read body", err.Error())
		return
	}

	event, err := webhook.ConstructEvent(body,
		c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
	if err != nil {
		h.Logger.Warn("webhook signature verification failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid signature", "")
		return
	}

	switch event.Type {
	case "payment_intent.succeeded", "payment_intent.canceled":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid event payload", err.Error())
			return
		}
		h.applyIntentEvent(c, string(event.Type), pi.ID)
	default:
		// Unhandled event types are acknowledged so Stripe stops retrying.
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

func (h *StripeWebhookHandler) applyIntentEvent(c *gin.Context, eventType, intentID string) {
	ctx := c.Request.Context()

	var err error
	if eventType == "payment_intent.succeeded" {
		_, err = h.Engine.ConfirmPayment(ctx, intentID)
	} else {
		var b, getErr = h.Engine.GetBookingByIntent(ctx, intentID)
		if getErr != nil {
			err = getErr
		} else {
			_, err = h.Engine.Cancel(ctx, b.ID, "payment_webhook")
		}
	}

	if err != nil {
		// A delivery can be final even when it doesn't apply: the booking never
		// landed (lost slot race, intent already voided) or already left the
		// active set (expiry sweep, earlier cancel). Retrying cannot change
		// either outcome, so ack it; only transient failures get a 5xx.
		if errors.Is(err, bookingRepo.ErrNotFound) || errors.Is(err, bookingRepo.ErrInvalidTransition) {
			h.Logger.Info("webhook event has no applicable booking, acknowledging",
				zap.String("eventType", eventType),
				zap.String("paymentIntentId", intentID),
				zap.Error(err))
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		h.Logger.Error("failed to apply webhook event",
			zap.String("eventType", eventType),
			zap.String("paymentIntentId", intentID),
			zap.Error(err))
		// 5xx makes Stripe retry the delivery.
		utils.JSONError(c, http.StatusInternalServerError, "failed to apply event", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
