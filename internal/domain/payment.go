// Package domain defines the value objects for booking payments.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus is the closed set of outcomes reported to the caller.
type BookingStatus string

const (
	StatusSuccess  BookingStatus = "SUCCESS"
	StatusRejected BookingStatus = "REJECTED"
)

// CreditCard is an immutable candidate card for a booking payment.
// Expiry has month granularity and is normalized to the first of the month.
type CreditCard struct {
	Number string
	Expiry time.Time
}

func NewCreditCard(number string, expiry time.Time) (CreditCard, error) {
	if number == "" {
		return CreditCard{}, NewMissingRequiredFieldError("card number")
	}
	if expiry.IsZero() {
		return CreditCard{}, NewInvalidExpiryError()
	}
	return CreditCard{
		Number: number,
		Expiry: time.Date(expiry.Year(), expiry.Month(), 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

// BookingPayment is one payment request for a booking. Cards are ordered
// by caller preference; the first card is tried first. Treated as
// immutable once constructed.
type BookingPayment struct {
	BookingID string
	Amount    decimal.Decimal
	Cards     []CreditCard
}

func NewBookingPayment(bookingID string, amount decimal.Decimal, cards []CreditCard) (*BookingPayment, error) {
	if bookingID == "" {
		return nil, NewMissingRequiredFieldError("booking_id")
	}
	if amount.IsNegative() {
		return nil, NewInvalidAmountError(amount)
	}
	if len(cards) == 0 {
		return nil, NewEmptyCardListError()
	}

	owned := make([]CreditCard, len(cards))
	copy(owned, cards)

	return &BookingPayment{
		BookingID: bookingID,
		Amount:    amount,
		Cards:     owned,
	}, nil
}

// BookingResponse is the authoritative outcome of one orchestration pass.
// PaymentID is generated by this system, never by the gateway.
type BookingResponse struct {
	BookingID string        `json:"bookingId"`
	PaymentID string        `json:"paymentId"`
	Status    BookingStatus `json:"status"`
}
