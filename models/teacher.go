package models

import "time"

// Teacher is a read-only reference entity. Sessions point at it via
// TeacherID; this client never mutates teachers.
type Teacher struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
