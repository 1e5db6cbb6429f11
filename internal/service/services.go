package service

import (
	"github.com/savasana/yoga-client/internal/adapter"
	"github.com/savasana/yoga-client/internal/logger"
	"github.com/savasana/yoga-client/internal/session"
	"github.com/savasana/yoga-client/internal/validators"
)

// ClientServices bundles the controllers behind one constructor so the
// composition root wires a single value into the UI.
type ClientServices struct {
	Auth    AuthService
	Booking BookingService
	Account AccountService

	// Store is the shared session store the services write to; the UI
	// reads it for gating and subscribes to its logged-in stream.
	Store *session.Store

	// Validator is exposed so the UI can re-evaluate form validity on
	// every field change with the same rule sets the services enforce.
	Validator validators.Validator
}

func NewClientServices(gateway adapter.ResourceGateway, store *session.Store, log *logger.Logger) *ClientServices {
	validator := validators.NewFormValidator()

	return &ClientServices{
		Auth:      NewAuthService(gateway, store, validator, log.GetChildLogger()),
		Booking:   NewBookingService(gateway, store, validator, log.GetChildLogger()),
		Account:   NewAccountService(gateway, store, log.GetChildLogger()),
		Store:     store,
		Validator: validator,
	}
}
