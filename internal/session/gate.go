package session

// ViewState is the set of render/permission booleans the UI derives from a
// store snapshot. It is pure data: no network access, recomputed on every
// emission of the logged-in stream.
type ViewState struct {
	// CanSeeAuthLinks shows the login/register links.
	CanSeeAuthLinks bool

	// CanSeeAccountLinks shows the sessions list, account and logout links.
	CanSeeAccountLinks bool

	// CanEditResource enables session create/update/delete affordances.
	CanEditResource bool

	// CanToggleParticipation enables the participate/un-participate button.
	CanToggleParticipation bool
}

// DeriveView computes the [ViewState] for a snapshot.
func DeriveView(state State) ViewState {
	admin := state.IsLogged && state.Identity != nil && state.Identity.Admin

	return ViewState{
		CanSeeAuthLinks:        !state.IsLogged,
		CanSeeAccountLinks:     state.IsLogged,
		CanEditResource:        admin,
		CanToggleParticipation: state.IsLogged,
	}
}
