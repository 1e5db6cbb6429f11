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

type bookingService struct {
	gateway   adapter.ResourceGateway
	store     *session.Store
	validator validators.Validator
	logger    *logger.Logger
}

func NewBookingService(gateway adapter.ResourceGateway, store *session.Store, validator validators.Validator, log *logger.Logger) BookingService {
	return &bookingService{gateway: gateway, store: store, validator: validator, logger: log}
}

func (b *bookingService) List(ctx context.Context) ([]models.Session, error) {
	if !b.store.Current().IsLogged {
		return nil, ErrNotAuthenticated
	}

	sessions, err := b.gateway.Sessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	return sessions, nil
}

func (b *bookingService) LoadDetail(ctx context.Context, id int64) (SessionDetail, error) {
	state := b.store.Current()
	if !state.IsLogged {
		return SessionDetail{}, ErrNotAuthenticated
	}

	classSession, err := b.gateway.Session(ctx, id)
	if err != nil {
		return SessionDetail{}, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	// The teacher lookup is part of the same load: no partial state is
	// surfaced when it fails.
	teacher, err := b.gateway.Teacher(ctx, classSession.TeacherID)
	if err != nil {
		return SessionDetail{}, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	return SessionDetail{
		Session:       classSession,
		Teacher:       teacher,
		IsParticipant: classSession.HasParticipant(state.Identity.ID),
		IsAdmin:       state.Identity.Admin,
	}, nil
}

func (b *bookingService) Participate(ctx context.Context, sessionID int64) (SessionDetail, error) {
	state := b.store.Current()
	if !state.IsLogged {
		return SessionDetail{}, ErrNotAuthenticated
	}

	if err := b.gateway.Participate(ctx, sessionID, state.Identity.ID); err != nil {
		return SessionDetail{}, fmt.Errorf("%w: %v", ErrMutationFailed, err)
	}

	// Membership lives in a server-computed list that other participants
	// touch concurrently; re-read it instead of patching the local copy.
	return b.LoadDetail(ctx, sessionID)
}

func (b *bookingService) UnParticipate(ctx context.Context, sessionID int64) (SessionDetail, error) {
	state := b.store.Current()
	if !state.IsLogged {
		return SessionDetail{}, ErrNotAuthenticated
	}

	if err := b.gateway.UnParticipate(ctx, sessionID, state.Identity.ID); err != nil {
		return SessionDetail{}, fmt.Errorf("%w: %v", ErrMutationFailed, err)
	}

	return b.LoadDetail(ctx, sessionID)
}

func (b *bookingService) Create(ctx context.Context, form models.SessionForm) (models.Session, error) {
	if err := b.requireAdmin(); err != nil {
		return models.Session{}, err
	}
	if err := b.validator.Validate(form); err != nil {
		return models.Session{}, err
	}

	created, err := b.gateway.CreateSession(ctx, form)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrMutationFailed, err)
	}

	b.logger.Info().Int64("session_id", created.ID).Msg("session created")
	return created, nil
}

func (b *bookingService) Update(ctx context.Context, id int64, form models.SessionForm) (models.Session, error) {
	if err := b.requireAdmin(); err != nil {
		return models.Session{}, err
	}
	if err := b.validator.Validate(form); err != nil {
		return models.Session{}, err
	}

	updated, err := b.gateway.UpdateSession(ctx, id, form)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrMutationFailed, err)
	}

	b.logger.Info().Int64("session_id", id).Msg("session updated")
	return updated, nil
}

func (b *bookingService) Delete(ctx context.Context, id int64) error {
	if err := b.requireAdmin(); err != nil {
		return err
	}

	if err := b.gateway.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrMutationFailed, err)
	}

	b.logger.Info().Int64("session_id", id).Msg("session deleted")
	return nil
}

func (b *bookingService) Teachers(ctx context.Context) ([]models.Teacher, error) {
	if !b.store.Current().IsLogged {
		return nil, ErrNotAuthenticated
	}

	teachers, err := b.gateway.Teachers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	return teachers, nil
}

// requireAdmin is the client-side authorization short-circuit for session
// CRUD: it rejects before any network call. The server still enforces the
// same rule.
func (b *bookingService) requireAdmin() error {
	state := b.store.Current()
	if !state.IsLogged {
		return ErrNotAuthenticated
	}
	if !state.Identity.Admin {
		return ErrPermissionDenied
	}
	return nil
}
