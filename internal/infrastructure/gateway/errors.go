package gateway

import (
	"errors"
	"fmt"
)

// GatewayError signals that the payment gateway could not be reached or
// answered outside its protocol. It is an infrastructure fault, distinct
// from a business decline.
type GatewayError struct {
	Code       string
	Message    string
	StatusCode int
}

const (
	ErrCodeUnavailable = "GATEWAY_UNAVAILABLE"
	ErrCodeBadResponse = "GATEWAY_BAD_RESPONSE"
)

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

func (e *GatewayError) IsRetryable() bool {
	return e.StatusCode == 0 || e.StatusCode >= 500
}

func IsGatewayError(err error) (*GatewayError, bool) {
	var gwErr *GatewayError
	ok := errors.As(err, &gwErr)
	return gwErr, ok
}
