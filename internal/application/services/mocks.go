package services

import (
	"context"
	"sync"

	"github.com/bookwise/payment-orchestrator/internal/domain"
)

// MockPaymentGateway is a hand-rolled gateway double. Behavior is
// overridden per test through the Fn fields; every call is counted and
// every charge request captured so tests can assert on the exact
// traffic the orchestrator produced.
type MockPaymentGateway struct {
	mu    sync.Mutex
	calls map[string]int

	chargeRequests   []domain.ChargeRequest
	blacklistQueries []string

	CheckBlacklistFn func(ctx context.Context, cardNumber string) (*domain.BlacklistResult, error)
	ChargeCardFn     func(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error)
}

func NewMockPaymentGateway() *MockPaymentGateway {
	return &MockPaymentGateway{
		calls: make(map[string]int),
	}
}

func (m *MockPaymentGateway) inc(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[method]++
}

func (m *MockPaymentGateway) GetCalls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *MockPaymentGateway) ChargeRequests() []domain.ChargeRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.ChargeRequest, len(m.chargeRequests))
	copy(out, m.chargeRequests)
	return out
}

func (m *MockPaymentGateway) BlacklistQueries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.blacklistQueries))
	copy(out, m.blacklistQueries)
	return out
}

func (m *MockPaymentGateway) CheckBlacklist(ctx context.Context, cardNumber string) (*domain.BlacklistResult, error) {
	m.inc("CheckBlacklist")
	m.mu.Lock()
	m.blacklistQueries = append(m.blacklistQueries, cardNumber)
	m.mu.Unlock()

	if m.CheckBlacklistFn != nil {
		return m.CheckBlacklistFn(ctx, cardNumber)
	}
	return &domain.BlacklistResult{Blacklisted: false}, nil
}

func (m *MockPaymentGateway) ChargeCard(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
	m.inc("ChargeCard")
	m.mu.Lock()
	m.chargeRequests = append(m.chargeRequests, req)
	m.mu.Unlock()

	if m.ChargeCardFn != nil {
		return m.ChargeCardFn(ctx, req)
	}
	return &domain.ChargeResult{
		Status:           domain.GatewayStatusSuccess,
		GatewayPaymentID: "gw-123",
	}, nil
}
