package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/savasana/yoga-client/internal/logger"
	"github.com/savasana/yoga-client/internal/mock"
	"github.com/savasana/yoga-client/internal/service"
	"github.com/savasana/yoga-client/internal/session"
	"github.com/savasana/yoga-client/models"
)

// newTestModel builds an appModel on a real store and a gateway mock with no
// expectations: these tests drive Update directly and never execute the
// returned commands, so nothing should reach the network.
func newTestModel(t *testing.T) (appModel, *session.Store) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gateway := mock.NewMockResourceGateway(ctrl)
	store := session.NewStore()
	services := service.NewClientServices(gateway, store, logger.Nop())

	m := newAppModel(context.Background(), services)
	t.Cleanup(m.teardown)
	return m, store
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "not authenticated", err: service.ErrNotAuthenticated, want: "Please log in first"},
		{name: "permission denied", err: service.ErrPermissionDenied, want: "Admins only"},
		{name: "wrapped permission denied", err: errors.Join(errors.New("update session"), service.ErrPermissionDenied), want: "Admins only"},
		{name: "connection refused", err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), want: "Server unavailable"},
		{name: "anything else", err: service.ErrAuthenticationFailed, want: genericErrMsg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

func TestWelcomeNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(appModel)
	assert.Equal(t, screenLogin, got.screen)

	m, _ = newTestModel(t)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(appModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	got = next.(appModel)
	assert.Equal(t, screenRegister, got.screen)
}

func TestLoginEnterIgnoredWhileInvalid(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(appModel)
	require.Equal(t, screenLogin, got.screen)
	require.False(t, got.login.valid)

	next, cmd := got.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got = next.(appModel)
	assert.False(t, got.login.submitting)
	assert.Nil(t, cmd)
}

func TestStaleGenerationDiscarded(t *testing.T) {
	m, _ := newTestModel(t)
	m.screen = screenList
	m.list = newListModel()
	m.gen = 7

	next, _ := m.Update(listLoadedMsg{gen: 6, sessions: []models.Session{{ID: 1, Name: "old"}}})
	got := next.(appModel)
	assert.True(t, got.list.loading, "stale response must not touch the list")
	assert.Empty(t, got.list.sessions)

	next, _ = got.Update(listLoadedMsg{gen: 7, sessions: []models.Session{{ID: 2, Name: "current"}}})
	got = next.(appModel)
	assert.False(t, got.list.loading)
	require.Len(t, got.list.sessions, 1)
	assert.Equal(t, "current", got.list.sessions[0].Name)
}

func TestRegisterSuccessRoutesToLogin(t *testing.T) {
	m, _ := newTestModel(t)
	m.screen = screenRegister
	m.register = newRegisterModel(m.services.Validator)
	m.register.submitting = true

	next, _ := m.Update(registerResultMsg{gen: m.gen})
	got := next.(appModel)
	assert.Equal(t, screenLogin, got.screen)
	assert.NotEmpty(t, got.login.status)
}

func TestLogoutEvictsProtectedScreens(t *testing.T) {
	m, store := newTestModel(t)
	store.LogIn(models.Identity{ID: 1, Admin: false})

	next, _ := m.Update(loggedChangedMsg{value: true})
	got := next.(appModel)
	got.screen = screenDetail
	gen := got.gen

	store.LogOut()
	next, _ = got.Update(loggedChangedMsg{value: false})
	got = next.(appModel)
	assert.Equal(t, screenWelcome, got.screen)
	assert.Greater(t, got.gen, gen, "in-flight work for the evicted screen must be invalidated")
	assert.False(t, got.gate.CanSeeAccountLinks)
	assert.True(t, got.gate.CanSeeAuthLinks)
}

func TestAdminKeysGatedOnDetail(t *testing.T) {
	m, store := newTestModel(t)
	store.LogIn(models.Identity{ID: 9, Admin: false})

	next, _ := m.Update(loggedChangedMsg{value: true})
	got := next.(appModel)
	got.screen = screenDetail
	got.detail.loaded = true
	got.detail.detail.Session = models.Session{ID: 3, Name: "morning flow"}

	next, _ = got.Update(keyRune('d'))
	got = next.(appModel)
	assert.False(t, got.confirm.active(), "non-admin delete key must be inert")

	next, cmd := got.Update(keyRune('e'))
	got = next.(appModel)
	assert.Equal(t, screenDetail, got.screen)
	assert.Nil(t, cmd)
}

func TestDeleteSessionConfirmFlow(t *testing.T) {
	m, store := newTestModel(t)
	store.LogIn(models.Identity{ID: 1, Admin: true})

	next, _ := m.Update(loggedChangedMsg{value: true})
	got := next.(appModel)
	got.screen = screenDetail
	got.detailID = 3
	got.detail.loaded = true
	got.detail.detail.Session = models.Session{ID: 3, Name: "morning flow"}

	next, _ = got.Update(keyRune('d'))
	got = next.(appModel)
	require.True(t, got.confirm.active())

	next, _ = got.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got = next.(appModel)
	assert.False(t, got.confirm.active(), "esc cancels the confirmation")
	assert.Equal(t, screenDetail, got.screen)

	next, _ = got.Update(keyRune('d'))
	got = next.(appModel)
	require.True(t, got.confirm.active())
	next, cmd := got.Update(keyRune('y'))
	got = next.(appModel)
	assert.False(t, got.confirm.active())
	assert.True(t, got.detail.busy)
	assert.NotNil(t, cmd, "confirming must dispatch the delete command")
}

func TestFormValidityTracksTeacherPick(t *testing.T) {
	m, store := newTestModel(t)
	store.LogIn(models.Identity{ID: 1, Admin: true})

	form := newFormModel(m.services.Validator)
	form.inputs[0].SetValue("morning flow")
	form.inputs[1].SetValue("2026-09-01")
	form.inputs[2].SetValue("start the day stretched")
	form.revalidate()
	assert.False(t, form.valid, "no teacher picked yet")

	form.setTeachers([]models.Teacher{{ID: 4, FirstName: "Margot", LastName: "Delahaye"}}, 0)
	assert.True(t, form.valid)

	built, err := form.buildForm()
	require.NoError(t, err)
	assert.Equal(t, int64(4), built.TeacherID)
}
