package models

// Identity represents the authenticated principal returned by the login
// endpoint. Exactly one Identity is live at a time and it is owned
// exclusively by the session store; controllers read it, never cache it.
type Identity struct {
	// Token is the opaque bearer token issued by the server. The client
	// never inspects its contents.
	Token string `json:"token"`

	// Type is the token scheme, "Bearer" as issued by the server.
	Type string `json:"type"`

	// ID is the account identifier of the authenticated user.
	ID int64 `json:"id"`

	// Username is the login identifier (the account email).
	Username string `json:"username"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Admin grants access to session create/update/delete.
	Admin bool `json:"admin"`
}
