package services

import "github.com/bookwise/payment-orchestrator/internal/domain"

// mapGatewayStatus translates the gateway's status vocabulary into our
// outcome set. The mapping is total: an unrecognized token degrades to
// a decline, never to a success.
func mapGatewayStatus(raw string) domain.BookingStatus {
	if raw == domain.GatewayStatusSuccess {
		return domain.StatusSuccess
	}
	return domain.StatusRejected
}
