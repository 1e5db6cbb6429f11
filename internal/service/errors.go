package service

import "errors"

var (
	// ErrAuthenticationFailed covers any failed login: bad credentials and
	// transport failures alike. The UI shows one generic indicator.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrRegistrationFailed covers any failed registration.
	ErrRegistrationFailed = errors.New("registration failed")

	// ErrNotAuthenticated is returned when an operation requires a live
	// identity and none is present. No network call is issued.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrPermissionDenied is the client-side admin gate: a non-admin
	// attempting session create/update/delete is rejected before any
	// network call. The server remains the authority.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrMutationFailed wraps a remote failure of an otherwise valid write.
	// Local state is left unchanged and nothing is retried.
	ErrMutationFailed = errors.New("mutation failed")

	// ErrLoadFailed wraps a remote failure while reading canonical state.
	ErrLoadFailed = errors.New("load failed")
)
