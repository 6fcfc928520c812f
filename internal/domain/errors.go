package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// DomainError represents a business validation error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Domain validation errors
const (
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeInvalidAmount        = "INVALID_AMOUNT"
	ErrCodeEmptyCardList        = "EMPTY_CARD_LIST"
	ErrCodeInvalidExpiry        = "INVALID_EXPIRY"
)

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidAmountError(amount decimal.Decimal) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount %s", amount),
	}
}

func NewEmptyCardListError() *DomainError {
	return &DomainError{
		Code:    ErrCodeEmptyCardList,
		Message: "a booking payment needs at least one card",
	}
}

func NewInvalidExpiryError() *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidExpiry,
		Message: "card expiry is not a valid calendar date",
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
