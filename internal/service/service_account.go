package service

import (
	"context"
	"fmt"

	"github.com/savasana/yoga-client/internal/adapter"
	"github.com/savasana/yoga-client/internal/logger"
	"github.com/savasana/yoga-client/internal/session"
	"github.com/savasana/yoga-client/models"
)

type accountService struct {
	gateway adapter.ResourceGateway
	store   *session.Store
	logger  *logger.Logger
}

func NewAccountService(gateway adapter.ResourceGateway, store *session.Store, log *logger.Logger) AccountService {
	return &accountService{gateway: gateway, store: store, logger: log}
}

func (a *accountService) Me(ctx context.Context) (models.User, error) {
	state := a.store.Current()
	if !state.IsLogged {
		return models.User{}, ErrNotAuthenticated
	}

	user, err := a.gateway.User(ctx, state.Identity.ID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	return user, nil
}

func (a *accountService) DeleteOwnAccount(ctx context.Context) error {
	state := a.store.Current()
	if !state.IsLogged {
		return ErrNotAuthenticated
	}

	// Deletion first, logout second. A failed delete must leave the
	// session fully intact.
	if err := a.gateway.DeleteUser(ctx, state.Identity.ID); err != nil {
		return fmt.Errorf("%w: %v", ErrMutationFailed, err)
	}

	a.store.LogOut()
	a.gateway.SetToken("")
	a.logger.Info().Int64("user_id", state.Identity.ID).Msg("account deleted")

	return nil
}
