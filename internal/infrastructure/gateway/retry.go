package gateway

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/bookwise/payment-orchestrator/internal/application"
	"github.com/bookwise/payment-orchestrator/internal/config"
	"github.com/bookwise/payment-orchestrator/internal/domain"
)

// RetryGatewayClient layers retry-with-backoff over a gateway client.
// The orchestrator itself never retries; this decorator is opt-in policy
// above the core. Retrying a charge is safe because every attempt carries
// the same locally generated payment id, which the gateway uses to
// deduplicate.
type RetryGatewayClient struct {
	inner      application.PaymentGateway
	baseDelay  time.Duration
	maxRetries int
}

func NewRetryGatewayClient(inner application.PaymentGateway, cfg config.RetryConfig) application.PaymentGateway {
	return &RetryGatewayClient{
		inner:      inner,
		baseDelay:  time.Duration(cfg.BaseDelay) * time.Second,
		maxRetries: int(cfg.MaxRetries),
	}
}

func (r *RetryGatewayClient) CheckBlacklist(ctx context.Context, cardNumber string) (*domain.BlacklistResult, error) {
	return retry(
		r,
		ctx,
		func(ctx context.Context) (*domain.BlacklistResult, error) {
			return r.inner.CheckBlacklist(ctx, cardNumber)
		},
	)
}

func (r *RetryGatewayClient) ChargeCard(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
	return retry(
		r,
		ctx,
		func(ctx context.Context) (*domain.ChargeResult, error) {
			return r.inner.ChargeCard(ctx, req)
		},
	)
}

// Generic retry helper
func retry[T any](r *RetryGatewayClient, ctx context.Context, operation func(ctx context.Context) (*T, error)) (*T, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if attempt < r.maxRetries-1 {
			time.Sleep(r.backoff(attempt))
		}
	}

	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

func isRetryable(err error) bool {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.IsRetryable()
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	return true
}

// Backoff calculation with exponential delay and jitter
func (r *RetryGatewayClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)

	jitter := time.Duration(rand.Intn(1000)) * time.Millisecond

	return base + jitter
}
