// Package adapter provides the transport layer for communicating with the
// yoga booking backend.
//
// The primary abstraction is [ResourceGateway], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPResourceGateway]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
// The services treat every non-2xx uniformly as a failure; the sentinels
// exist for logging and tests, not for branching business logic.
package adapter

import (
	"context"

	"github.com/savasana/yoga-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/resource_gateway_mock.go -package=mock

// ResourceGateway defines transport-agnostic communication with the four
// remote resource collections (auth, sessions, teachers, users).
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package. Implementations hold no domain state beyond the
// bearer token.
type ResourceGateway interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. An empty string clears it.
	SetToken(token string)

	// Token returns the bearer token currently stored in the gateway, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates with the backend and returns the resulting
	// [models.Identity]. On success the identity's token is stored via
	// SetToken. Returns an error if the request fails or the server responds
	// with a non-2xx status.
	Login(ctx context.Context, req models.LoginRequest) (models.Identity, error)

	// Register creates a new account. The backend responds with an empty
	// body on success; no identity is returned and no token is stored.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Sessions returns all class sessions.
	Sessions(ctx context.Context) ([]models.Session, error)

	// Session returns the session identified by id.
	Session(ctx context.Context, id int64) (models.Session, error)

	// CreateSession creates a session from the form and returns the
	// server-assigned record.
	CreateSession(ctx context.Context, form models.SessionForm) (models.Session, error)

	// UpdateSession replaces the session identified by id with the form
	// values and returns the updated record.
	UpdateSession(ctx context.Context, id int64, form models.SessionForm) (models.Session, error)

	// DeleteSession deletes the session identified by id.
	DeleteSession(ctx context.Context, id int64) error

	// Participate adds userID to the session's participant list.
	// The request carries a null body, mirroring the backend contract.
	Participate(ctx context.Context, sessionID, userID int64) error

	// UnParticipate removes userID from the session's participant list.
	UnParticipate(ctx context.Context, sessionID, userID int64) error

	// Teachers returns all teachers.
	Teachers(ctx context.Context) ([]models.Teacher, error)

	// Teacher returns the teacher identified by id.
	Teacher(ctx context.Context, id int64) (models.Teacher, error)

	// User returns the account profile identified by id.
	User(ctx context.Context, id int64) (models.User, error)

	// DeleteUser deletes the account identified by id.
	DeleteUser(ctx context.Context, id int64) error
}
