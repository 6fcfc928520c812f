// Package gateway is the HTTP adapter for the PayBuddy payment gateway.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/bookwise/payment-orchestrator/internal/application"
	"github.com/bookwise/payment-orchestrator/internal/config"
	"github.com/bookwise/payment-orchestrator/internal/domain"
)

const expiryWireFormat = "2006-01-02"

type HTTPGatewayClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewGatewayClient(cfg config.GatewayConfig) application.PaymentGateway {
	return &HTTPGatewayClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

func (c *HTTPGatewayClient) CheckBlacklist(ctx context.Context, cardNumber string) (*domain.BlacklistResult, error) {
	reqURL := fmt.Sprintf("%s/blacklisted-cards/%s", c.baseURL, url.PathEscape(cardNumber))
	resp, err := sendRequest[any, blacklistResponse](c, ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	return &domain.BlacklistResult{Blacklisted: resp.Blacklisted == "true"}, nil
}

func (c *HTTPGatewayClient) ChargeCard(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
	reqURL := fmt.Sprintf("%s/payments", c.baseURL)
	body := paymentRequest{
		PaymentID:        req.PaymentID,
		CreditCardNumber: req.CardNumber,
		CreditCardExpiry: req.CardExpiry.Format(expiryWireFormat),
		Amount:           req.Amount,
	}

	resp, err := sendRequest[paymentRequest, paymentResponse](c, ctx, http.MethodPost, reqURL, &body)
	if err != nil {
		return nil, err
	}
	return &domain.ChargeResult{
		Status:           resp.PaymentResponseStatus,
		GatewayPaymentID: resp.PaymentID,
	}, nil
}

func sendRequest[Req any, Resp any](c *HTTPGatewayClient, ctx context.Context, method, reqURL string, reqBody *Req) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &GatewayError{
			Code:    ErrCodeUnavailable,
			Message: err.Error(),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &GatewayError{
			Code:       ErrCodeUnavailable,
			Message:    fmt.Sprintf("gateway returned status %d: %s", resp.StatusCode, string(body)),
			StatusCode: resp.StatusCode,
		}
	}

	var gatewayResp Resp
	if err := json.NewDecoder(resp.Body).Decode(&gatewayResp); err != nil {
		return nil, &GatewayError{
			Code:       ErrCodeBadResponse,
			Message:    fmt.Sprintf("error decoding json response: %v", err),
			StatusCode: resp.StatusCode,
		}
	}

	return &gatewayResp, nil
}
