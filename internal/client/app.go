// Package client ties the service layer and the terminal UI into one
// runnable application.
package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/savasana/yoga-client/internal/logger"
	"github.com/savasana/yoga-client/internal/service"
	"github.com/savasana/yoga-client/internal/tui"
)

// App is the interactive booking client. It satisfies [Client].
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("nil services")
	}
	if ui == nil {
		return nil, errors.New("nil tui")
	}
	return &App{services: services, tui: ui, logger: log}, nil
}

// Run drives the UI until the user quits or the process receives an
// interrupt. Any live session is logged out on the way down so the gateway
// holds no bearer token past the UI's lifetime.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defer func() {
		if a.services.Store.Current().IsLogged {
			a.services.Auth.Logout()
		}
	}()

	if err := a.tui.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			a.logger.Info().Msg("interrupted")
			return nil
		}
		return err
	}

	return nil
}
