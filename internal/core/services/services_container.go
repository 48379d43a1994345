package services

import (
	portssvc "github.com/SscSPs/booking_ledger_engine/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer() *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Booking: NewBookingService(),
	}
}
