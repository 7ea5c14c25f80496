package booking

import "fmt"

// PaymentError signals that the charge for a booking failed; the booking is
// not persisted when this is returned.
type PaymentError struct {
	Code    string
	Message string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewPaymentError(msg string) error {
	return &PaymentError{
		Code:    "paymentError",
		Message: msg,
	}
}
