package gateway_test

import (
	"context"
	"testing"

	"github.com/bookwise/payment-orchestrator/internal/application"
	"github.com/bookwise/payment-orchestrator/internal/application/services"
	"github.com/bookwise/payment-orchestrator/internal/config"
	"github.com/bookwise/payment-orchestrator/internal/domain"
	"github.com/bookwise/payment-orchestrator/internal/infrastructure/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRetryClient(inner *services.MockPaymentGateway, maxRetries int32) application.PaymentGateway {
	return gateway.NewRetryGatewayClient(inner, config.RetryConfig{
		BaseDelay:  0,
		MaxRetries: maxRetries,
	})
}

func TestRetryGatewayClient_NoRetryOnSuccess(t *testing.T) {
	inner := services.NewMockPaymentGateway()
	client := newRetryClient(inner, 3)

	result, err := client.ChargeCard(context.Background(), chargeRequest())

	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", result.Status)
	assert.Equal(t, 1, inner.GetCalls("ChargeCard"))
}

func TestRetryGatewayClient_RetriesOn5xxThenSucceeds(t *testing.T) {
	inner := services.NewMockPaymentGateway()
	failures := 2
	inner.ChargeCardFn = func(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
		if failures > 0 {
			failures--
			return nil, &gateway.GatewayError{
				Code:       gateway.ErrCodeUnavailable,
				Message:    "internal server error",
				StatusCode: 500,
			}
		}
		return &domain.ChargeResult{Status: domain.GatewayStatusSuccess}, nil
	}
	client := newRetryClient(inner, 3)

	result, err := client.ChargeCard(context.Background(), chargeRequest())

	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", result.Status)
	assert.Equal(t, 3, inner.GetCalls("ChargeCard"))
}

func TestRetryGatewayClient_GivesUpAfterMaxRetries(t *testing.T) {
	inner := services.NewMockPaymentGateway()
	inner.ChargeCardFn = func(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
		return nil, &gateway.GatewayError{
			Code:       gateway.ErrCodeUnavailable,
			Message:    "connection refused",
			StatusCode: 0,
		}
	}
	client := newRetryClient(inner, 3)

	_, err := client.ChargeCard(context.Background(), chargeRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum retries exceeded")
	assert.Equal(t, 3, inner.GetCalls("ChargeCard"))

	// The wrapped cause stays inspectable.
	gwErr, ok := gateway.IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, gateway.ErrCodeUnavailable, gwErr.Code)
}

func TestRetryGatewayClient_BusinessDeclineIsNotRetried(t *testing.T) {
	inner := services.NewMockPaymentGateway()
	inner.ChargeCardFn = func(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
		return &domain.ChargeResult{Status: domain.GatewayStatusFailed}, nil
	}
	client := newRetryClient(inner, 3)

	result, err := client.ChargeCard(context.Background(), chargeRequest())

	require.NoError(t, err)
	assert.Equal(t, "FAILED", result.Status)
	assert.Equal(t, 1, inner.GetCalls("ChargeCard"))
}

func TestRetryGatewayClient_CheckBlacklistRetries(t *testing.T) {
	inner := services.NewMockPaymentGateway()
	failed := false
	inner.CheckBlacklistFn = func(ctx context.Context, cardNumber string) (*domain.BlacklistResult, error) {
		if !failed {
			failed = true
			return nil, &gateway.GatewayError{
				Code:       gateway.ErrCodeUnavailable,
				Message:    "bad gateway",
				StatusCode: 502,
			}
		}
		return &domain.BlacklistResult{Blacklisted: false}, nil
	}
	client := newRetryClient(inner, 3)

	result, err := client.CheckBlacklist(context.Background(), "1234-1234-1234-1234")

	require.NoError(t, err)
	assert.False(t, result.Blacklisted)
	assert.Equal(t, 2, inner.GetCalls("CheckBlacklist"))
}
