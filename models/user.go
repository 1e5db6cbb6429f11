package models

import "time"

// User represents an account profile as served by the user endpoint.
// The password is write-only: it appears on [RegisterRequest] and is never
// round-tripped back into client state.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
