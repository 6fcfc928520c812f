package application

import (
	"context"

	"github.com/bookwise/payment-orchestrator/internal/domain"
)

// PaymentGateway defines the behavior of the external payment provider.
// Implementations are pure I/O boundaries; all decision logic stays in
// the orchestrator.
type PaymentGateway interface {
	// CheckBlacklist asks the provider whether a card number may be
	// charged. One outbound call, no internal retries.
	CheckBlacklist(ctx context.Context, cardNumber string) (*domain.BlacklistResult, error)

	// ChargeCard submits one charge attempt. A business decline comes
	// back as a normal ChargeResult; only transport or protocol
	// failures are returned as errors.
	ChargeCard(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error)
}
