package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/savasana/yoga-client/models"
)

func TestDeriveView(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  ViewState
	}{
		{
			name:  "logged out",
			state: State{},
			want: ViewState{
				CanSeeAuthLinks: true,
			},
		},
		{
			name:  "regular user",
			state: State{IsLogged: true, Identity: &models.Identity{ID: 1}},
			want: ViewState{
				CanSeeAccountLinks:     true,
				CanToggleParticipation: true,
			},
		},
		{
			name:  "admin",
			state: State{IsLogged: true, Identity: &models.Identity{ID: 1, Admin: true}},
			want: ViewState{
				CanSeeAccountLinks:     true,
				CanEditResource:        true,
				CanToggleParticipation: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveView(tt.state))
		})
	}
}

func TestDeriveView_RecomputedPerSnapshot(t *testing.T) {
	store := NewStore()

	gate := DeriveView(store.Current())
	assert.True(t, gate.CanSeeAuthLinks)
	assert.False(t, gate.CanEditResource)

	store.LogIn(models.Identity{ID: 1, Admin: true})
	gate = DeriveView(store.Current())
	assert.False(t, gate.CanSeeAuthLinks)
	assert.True(t, gate.CanEditResource)

	store.LogOut()
	gate = DeriveView(store.Current())
	assert.True(t, gate.CanSeeAuthLinks)
	assert.False(t, gate.CanToggleParticipation)
}
