package gateway

import "github.com/shopspring/decimal"

// Wire formats of the PayBuddy gateway. Dates carry no time component
// and amounts are decimal strings with full precision.

type paymentRequest struct {
	PaymentID        string          `json:"paymentId"`
	CreditCardNumber string          `json:"creditCardNumber"`
	CreditCardExpiry string          `json:"creditCardExpiry"`
	Amount           decimal.Decimal `json:"amount"`
}

type paymentResponse struct {
	PaymentResponseStatus string `json:"paymentResponseStatus"`
	PaymentID             string `json:"paymentId"`
}

// The gateway encodes the blacklist flag as a string, not a JSON bool.
type blacklistResponse struct {
	Blacklisted string `json:"blacklisted"`
}
