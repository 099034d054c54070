package booking

import "fmt"

// BookingError is a typed domain error with a stable code for API mapping.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{Code: "validationError", Message: msg}
}

func NewServiceInactiveError(serviceID string) error {
	return &BookingError{Code: "serviceInactive", Message: fmt.Sprintf("service %s is not bookable", serviceID)}
}

// ErrPaymentFailed wraps payment authority failures so handlers can map them to a
// generic "payment failed, try again" response without leaking provider details.
type PaymentError struct {
	Err error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment processing failed: %v", e.Err)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}
