package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gateway status tokens as PayBuddy reports them. Anything outside this
// vocabulary is mapped conservatively to a decline by the orchestrator.
const (
	GatewayStatusSuccess = "SUCCESS"
	GatewayStatusFailed  = "FAILED"
)

// ChargeRequest carries one charge attempt to the gateway. PaymentID is
// our identifier; the gateway uses it to deduplicate retried attempts.
type ChargeRequest struct {
	PaymentID  string
	CardNumber string
	CardExpiry time.Time
	Amount     decimal.Decimal
}

// ChargeResult is the gateway's answer to a charge attempt. A FAILED
// status is a business decline, not an error. GatewayPaymentID is the
// gateway's own correlation id; it is observed but never propagated.
type ChargeResult struct {
	Status           string
	GatewayPaymentID string
}

// BlacklistResult reports whether a card number may be charged at all.
type BlacklistResult struct {
	Blacklisted bool
}
