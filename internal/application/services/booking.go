// Package services holds the payment orchestration logic.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bookwise/payment-orchestrator/internal/application"
	"github.com/bookwise/payment-orchestrator/internal/domain"
	"github.com/google/uuid"
)

// BookingService decides the outcome of a booking payment: it screens
// candidate cards against the blacklist, attempts charges in the
// caller's order and stops at the first success. Transport failures
// abort the whole pass; a decline only moves on to the next card.
//
// The service holds no mutable state between invocations and is safe
// for concurrent use across different bookings. Cards within one
// invocation are tried strictly one at a time, never in parallel, so a
// booking can never have two in-flight charges.
type BookingService struct {
	gateway application.PaymentGateway
	logger  *slog.Logger
}

func NewBookingService(gateway application.PaymentGateway, logger *slog.Logger) *BookingService {
	return &BookingService{
		gateway: gateway,
		logger:  logger,
	}
}

// PayForBooking tries exactly the first card of the payment.
func (s *BookingService) PayForBooking(ctx context.Context, bp *domain.BookingPayment) (*domain.BookingResponse, error) {
	return s.payWithCards(ctx, bp, bp.Cards[:1])
}

// PayForBookingWithMultipleCards falls back through the full ordered
// card list until one charge succeeds.
func (s *BookingService) PayForBookingWithMultipleCards(ctx context.Context, bp *domain.BookingPayment) (*domain.BookingResponse, error) {
	return s.payWithCards(ctx, bp, bp.Cards)
}

func (s *BookingService) payWithCards(ctx context.Context, bp *domain.BookingPayment, cards []domain.CreditCard) (*domain.BookingResponse, error) {
	// The payment id is ours, generated before any network call and
	// held stable across every card attempt so the gateway can
	// deduplicate retries of the same booking payment.
	paymentID := uuid.New().String()

	for _, card := range cards {
		blacklist, err := s.gateway.CheckBlacklist(ctx, card.Number)
		if err != nil {
			return nil, fmt.Errorf("blacklist check: %w", err)
		}
		if blacklist.Blacklisted {
			s.logger.Info("card blacklisted, skipping",
				"booking_id", bp.BookingID,
				"payment_id", paymentID,
			)
			continue
		}

		result, err := s.gateway.ChargeCard(ctx, domain.ChargeRequest{
			PaymentID:  paymentID,
			CardNumber: card.Number,
			CardExpiry: card.Expiry,
			Amount:     bp.Amount,
		})
		if err != nil {
			return nil, fmt.Errorf("charge card: %w", err)
		}

		if mapGatewayStatus(result.Status) == domain.StatusSuccess {
			s.logger.Info("payment succeeded",
				"booking_id", bp.BookingID,
				"payment_id", paymentID,
			)
			return &domain.BookingResponse{
				BookingID: bp.BookingID,
				PaymentID: paymentID,
				Status:    domain.StatusSuccess,
			}, nil
		}

		s.logger.Info("card declined, trying next",
			"booking_id", bp.BookingID,
			"payment_id", paymentID,
			"gateway_status", result.Status,
		)
	}

	return &domain.BookingResponse{
		BookingID: bp.BookingID,
		PaymentID: paymentID,
		Status:    domain.StatusRejected,
	}, nil
}
