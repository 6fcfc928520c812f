package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/bookwise/payment-orchestrator/internal/domain"
	"github.com/bookwise/payment-orchestrator/internal/interfaces/rest"
	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"
)

type BookingPayer interface {
	PayForBookingWithMultipleCards(ctx context.Context, bp *domain.BookingPayment) (*domain.BookingResponse, error)
}

type PaymentHandler struct {
	bookingService BookingPayer
	validate       *validator.Validate
}

func NewPaymentHandler(bookingService BookingPayer) *PaymentHandler {
	return &PaymentHandler{
		bookingService: bookingService,
		validate:       validator.New(),
	}
}

func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /bookings/{bookingID}/payment", h.HandlePayForBooking)
}

type CardRequest struct {
	Number string `json:"number" validate:"required"`
	Expiry string `json:"expiry" validate:"required"`
}

type PayForBookingRequest struct {
	Amount string        `json:"amount" validate:"required"`
	Cards  []CardRequest `json:"cards" validate:"required,min=1,dive"`
}

// HandlePayForBooking runs one orchestration pass for a booking and
// returns the definitive outcome: SUCCESS, REJECTED, or an
// infrastructure failure.
func (h *PaymentHandler) HandlePayForBooking(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		rest.RespondWithError(w, err)
		return
	}

	var req PayForBookingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		rest.RespondWithError(w, &domain.DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "request body is not valid json",
		})
		return
	}

	if err := h.validate.Struct(req); err != nil {
		rest.RespondWithError(w, &domain.DomainError{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		})
		return
	}

	bp, err := toBookingPayment(r.PathValue("bookingID"), req)
	if err != nil {
		rest.RespondWithError(w, err)
		return
	}

	response, err := h.bookingService.PayForBookingWithMultipleCards(r.Context(), bp)
	if err != nil {
		rest.RespondWithError(w, err)
		return
	}

	rest.RespondWithJSON(w, http.StatusOK, response)
}

func toBookingPayment(bookingID string, req PayForBookingRequest) (*domain.BookingPayment, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, &domain.DomainError{
			Code:    domain.ErrCodeInvalidAmount,
			Message: "amount is not a valid decimal",
			Err:     err,
		}
	}

	cards := make([]domain.CreditCard, 0, len(req.Cards))
	for _, c := range req.Cards {
		expiry, err := time.Parse("2006-01-02", c.Expiry)
		if err != nil {
			return nil, &domain.DomainError{
				Code:    domain.ErrCodeInvalidExpiry,
				Message: "card expiry must be an ISO date",
				Err:     err,
			}
		}
		card, err := domain.NewCreditCard(c.Number, expiry)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return domain.NewBookingPayment(bookingID, amount, cards)
}
