package service

import (
	"context"

	"github.com/savasana/yoga-client/models"
)

// AuthService defines the client-side contract for authentication.
// Implementations orchestrate the gateway and are the only writers of the
// session store besides AccountService's self-delete.
type AuthService interface {
	// Login validates the credentials, authenticates against the backend
	// and, only on success, installs the returned identity in the session
	// store. A validation failure is returned as-is; any gateway failure is
	// wrapped in [ErrAuthenticationFailed] and leaves the store untouched.
	// No retry is attempted.
	Login(ctx context.Context, email, password string) (models.Identity, error)

	// Register validates the profile and creates the account. The user is
	// not logged in afterwards; a gateway failure is wrapped in
	// [ErrRegistrationFailed].
	Register(ctx context.Context, req models.RegisterRequest) error

	// Logout clears the session store and the gateway's bearer token. It is
	// unconditional and performs no remote call: the backend exposes no
	// token invalidation endpoint.
	Logout()
}

// SessionDetail is the fully resolved state of a session-detail view:
// the session, its teacher, and the viewer's relationship to it.
type SessionDetail struct {
	Session       models.Session
	Teacher       models.Teacher
	IsParticipant bool
	IsAdmin       bool
}

// BookingService defines the session CRUD and participation operations.
//
// Every mutation follows the refetch-after-mutate discipline: the client
// never patches its local projection of the participant list, it re-reads
// the canonical session after the server acknowledged the write.
type BookingService interface {
	// List returns all sessions. Requires an authenticated identity.
	List(ctx context.Context) ([]models.Session, error)

	// LoadDetail fetches the session and then its teacher, failing the
	// whole load if either fetch fails, and derives IsAdmin and
	// IsParticipant from the current store snapshot.
	LoadDetail(ctx context.Context, id int64) (SessionDetail, error)

	// Participate adds the current identity to the session and re-fetches
	// the detail. Returns [ErrNotAuthenticated] before any network call when
	// no identity is live. The server owns toggle idempotence; a duplicate
	// join surfaces as a wrapped remote error.
	Participate(ctx context.Context, sessionID int64) (SessionDetail, error)

	// UnParticipate removes the current identity from the session and
	// re-fetches the detail.
	UnParticipate(ctx context.Context, sessionID int64) (SessionDetail, error)

	// Create validates the form and creates the session. Admin-gated: a
	// non-admin caller gets [ErrPermissionDenied] before any network call.
	Create(ctx context.Context, form models.SessionForm) (models.Session, error)

	// Update validates the form and replaces the session. Admin-gated like
	// Create.
	Update(ctx context.Context, id int64, form models.SessionForm) (models.Session, error)

	// Delete removes the session. Admin-gated like Create.
	Delete(ctx context.Context, id int64) error

	// Teachers returns all teachers, for the session form's picker.
	Teachers(ctx context.Context) ([]models.Teacher, error)
}

// AccountService defines self-service operations on the caller's own
// account profile.
type AccountService interface {
	// Me returns the current identity's account profile.
	Me(ctx context.Context) (models.User, error)

	// DeleteOwnAccount deletes the caller's account and, only after the
	// server acknowledged the deletion, logs the session out. The two steps
	// are strictly sequenced; a failed delete leaves the session intact.
	DeleteOwnAccount(ctx context.Context) error
}
