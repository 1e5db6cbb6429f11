package models

import "time"

// Session represents a yoga class session. Users holds the account ids of
// the participants; the list is server-computed and is never patched
// locally, only replaced by a fresh fetch.
type Session struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	TeacherID   int64     `json:"teacher_id"`
	Description string    `json:"description"`
	Users       []int64   `json:"users"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasParticipant reports whether userID is in the session's participant list.
func (s Session) HasParticipant(userID int64) bool {
	for _, id := range s.Users {
		if id == userID {
			return true
		}
	}
	return false
}

// SessionForm is the create/update request body for a session. It carries
// no id and no participant list; both are owned by the server.
type SessionForm struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	TeacherID   int64     `json:"teacher_id"`
	Description string    `json:"description"`
}
