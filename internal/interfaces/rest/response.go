// Package rest carries the JSON response envelope and error mapping
// shared by the HTTP handlers.
package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bookwise/payment-orchestrator/internal/domain"
	"github.com/bookwise/payment-orchestrator/internal/infrastructure/gateway"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func RespondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success: status >= 200 && status < 300,
	}

	if response.Success {
		response.Data = data
	} else {
		if apiErr, ok := data.(*APIError); ok {
			response.Error = apiErr
		}
	}

	_ = json.NewEncoder(w).Encode(response)
}

// RespondWithError maps the error taxonomy onto HTTP: validation
// failures are client errors, gateway unavailability is a bad gateway.
// A business decline never reaches this path; it is a normal response.
func RespondWithError(w http.ResponseWriter, err error) {
	code := "INTERNAL_ERROR"
	message := err.Error()
	status := http.StatusInternalServerError

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		code = domainErr.Code
		message = domainErr.Message
		status = http.StatusBadRequest
	} else if gwErr, ok := gateway.IsGatewayError(err); ok {
		code = gwErr.Code
		message = gwErr.Message
		status = http.StatusBadGateway
	}

	RespondWithJSON(w, status, &APIError{
		Code:    code,
		Message: message,
	})
}
