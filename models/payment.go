package models

// PaymentIntentRequest describes a charge authorization request sent to the payment authority.
type PaymentIntentRequest struct {
	AmountCents     int64
	Currency        string
	CustomerID      string
	PaymentMethodID string
	Metadata        map[string]string
}

// PaymentIntentRef references an external payment-provider intent
// (authorized but not yet captured).
type PaymentIntentRef struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret,omitempty"`
	AmountCents  int64  `json:"amount_cents"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}
