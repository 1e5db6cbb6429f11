// Package tui implements the terminal user interface of the yoga booking
// client: welcome, login, register, sessions list, session detail, the
// admin session form and the account screen.
//
// All state transitions happen inside the Bubble Tea update loop; remote
// calls run as commands whose results re-enter the loop as messages. Every
// async message carries the generation it was dispatched under, and the
// loop discards messages from screens that were torn down in the meantime,
// so a stale response can never touch shared state.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/savasana/yoga-client/internal/logger"
	"github.com/savasana/yoga-client/internal/service"
)

// ErrUserQuit reports that the user closed the application.
var ErrUserQuit = errors.New("user quit")

// TUI runs the interactive client on top of the service layer.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("nil services")
	}
	return &TUI{services: services, logger: log}, nil
}

// Run drives the UI until the user quits. It blocks the calling goroutine.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services)
	defer model.teardown()

	program := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("tui run: %w", err)
	}

	if m, ok := final.(appModel); ok && m.quitting {
		t.logger.Info().Msg("user quit")
	}

	return nil
}
