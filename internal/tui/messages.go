package tui

import (
	"github.com/savasana/yoga-client/internal/service"
	"github.com/savasana/yoga-client/models"
)

// Async results carry the generation they were dispatched under; the root
// model discards anything from a generation that is no longer current.

type loginResultMsg struct {
	gen      int
	identity models.Identity
	err      error
}

type registerResultMsg struct {
	gen int
	err error
}

type listLoadedMsg struct {
	gen      int
	sessions []models.Session
	err      error
}

type detailLoadedMsg struct {
	gen    int
	detail service.SessionDetail
	err    error
}

type participationMsg struct {
	gen    int
	detail service.SessionDetail
	err    error
}

type teachersLoadedMsg struct {
	gen      int
	teachers []models.Teacher
	err      error
}

type sessionSavedMsg struct {
	gen int
	err error
}

type sessionDeletedMsg struct {
	gen int
	err error
}

type profileLoadedMsg struct {
	gen  int
	user models.User
	err  error
}

type accountDeletedMsg struct {
	gen int
	err error
}

// loggedChangedMsg re-enters the update loop for every emission of the
// store's logged-in stream.
type loggedChangedMsg struct {
	value bool
}

type copiedMsg struct{}
