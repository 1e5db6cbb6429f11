package service

import (
	"context"
	"fmt"

	"github.com/savasana/yoga-client/internal/adapter"
	"github.com/savasana/yoga-client/internal/logger"
	"github.com/savasana/yoga-client/internal/session"
	"github.com/savasana/yoga-client/internal/validators"
	"github.com/savasana/yoga-client/models"
)

type authService struct {
	gateway   adapter.ResourceGateway
	store     *session.Store
	validator validators.Validator
	logger    *logger.Logger
}

func NewAuthService(gateway adapter.ResourceGateway, store *session.Store, validator validators.Validator, log *logger.Logger) AuthService {
	return &authService{gateway: gateway, store: store, validator: validator, logger: log}
}

func (a *authService) Login(ctx context.Context, email, password string) (models.Identity, error) {
	req := models.LoginRequest{Email: email, Password: password}
	if err := a.validator.Validate(req); err != nil {
		return models.Identity{}, err
	}

	identity, err := a.gateway.Login(ctx, req)
	if err != nil {
		a.logger.Warn().Err(err).Msg("login rejected")
		return models.Identity{}, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	// The store is only written once the backend accepted the credentials.
	a.store.LogIn(identity)
	a.logger.Info().Int64("user_id", identity.ID).Bool("admin", identity.Admin).Msg("logged in")

	return identity, nil
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := a.validator.Validate(req); err != nil {
		return err
	}

	if err := a.gateway.Register(ctx, req); err != nil {
		a.logger.Warn().Err(err).Msg("registration rejected")
		return fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	return nil
}

func (a *authService) Logout() {
	a.store.LogOut()
	a.gateway.SetToken("")
	a.logger.Info().Msg("logged out")
}
