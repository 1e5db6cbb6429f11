package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/savasana/yoga-client/internal/logger"
	"github.com/savasana/yoga-client/internal/mock"
	"github.com/savasana/yoga-client/internal/session"
	"github.com/savasana/yoga-client/internal/validators"
	"github.com/savasana/yoga-client/models"
)

var adminIdentity = models.Identity{
	Token:     "opaque-token",
	Type:      "Bearer",
	ID:        1,
	Username:  "yoga@studio.com",
	FirstName: "Admin",
	LastName:  "Admin",
	Admin:     true,
}

// newTestAuthSvc builds an authService against a mocked gateway and a real
// store so the state-consistency invariants are exercised for real.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockResourceGateway, *session.Store) {
	t.Helper()
	mockGateway := mock.NewMockResourceGateway(ctrl)
	store := session.NewStore()

	svc := NewAuthService(mockGateway, store, validators.NewFormValidator(), logger.Nop()).(*authService)
	return svc, mockGateway, store
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, store := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockGateway.EXPECT().
		Login(ctx, models.LoginRequest{Email: "yoga@studio.com", Password: "test!1234"}).
		Return(adminIdentity, nil)

	identity, err := svc.Login(ctx, "yoga@studio.com", "test!1234")
	require.NoError(t, err)
	assert.Equal(t, adminIdentity, identity)

	state := store.Current()
	assert.True(t, state.IsLogged)
	require.NotNil(t, state.Identity)
	assert.Equal(t, adminIdentity, *state.Identity)
}

func TestAuthService_Login_RemoteFailureLeavesStoreLoggedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, store := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockGateway.EXPECT().
		Login(ctx, gomock.Any()).
		Return(models.Identity{}, errors.New("401 bad credentials"))

	_, err := svc.Login(ctx, "yoga@studio.com", "wrong-password")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	assert.False(t, store.Current().IsLogged)
}

func TestAuthService_Login_ValidationShortCircuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No gateway expectation: an invalid form must not reach the network.
	svc, _, store := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), "not-an-email", "valid")
	require.Error(t, err)

	var fieldErr *validators.FieldError
	assert.True(t, errors.As(err, &fieldErr))
	assert.False(t, store.Current().IsLogged)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success_NoAutoLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, store := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{
		Email:     "new@studio.com",
		FirstName: "New",
		LastName:  "Member",
		Password:  "secret",
	}
	mockGateway.EXPECT().Register(ctx, req).Return(nil)

	require.NoError(t, svc.Register(ctx, req))
	assert.False(t, store.Current().IsLogged, "registration must not log the user in")
}

func TestAuthService_Register_RemoteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockGateway.EXPECT().Register(ctx, gomock.Any()).Return(errors.New("email taken"))

	err := svc.Register(ctx, models.RegisterRequest{
		Email: "dup@studio.com", FirstName: "Dup", LastName: "User", Password: "secret",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegistrationFailed)
}

func TestAuthService_Register_ValidationShortCircuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "new@studio.com", FirstName: "Al", LastName: "Member", Password: "secret",
	})

	var lengthErr *validators.LengthError
	require.True(t, errors.As(err, &lengthErr))
	assert.Equal(t, validators.FieldFirstName, lengthErr.Field)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockGateway, store := newTestAuthSvc(t, ctrl)
	store.LogIn(adminIdentity)

	mockGateway.EXPECT().SetToken("")

	svc.Logout()

	state := store.Current()
	assert.False(t, state.IsLogged)
	assert.Nil(t, state.Identity)
}
