package services

import (
	"testing"

	"github.com/bookwise/payment-orchestrator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapGatewayStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.BookingStatus
	}{
		{"SUCCESS", domain.StatusSuccess},
		{"FAILED", domain.StatusRejected},
		{"COMPLETE", domain.StatusRejected},
		{"PROCESSING", domain.StatusRejected},
		{"success", domain.StatusRejected},
		{"", domain.StatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, mapGatewayStatus(tt.raw))
		})
	}
}
