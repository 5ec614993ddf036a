package domain

import "time"

// Session is the active-user record. The platform holds at most one active
// session at a time; it survives restarts through the persistent store.
type Session struct {
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserType  UserType  `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) IsMentor() bool {
	return s != nil && s.UserType == UserTypeMentor
}

func (s *Session) IsMentee() bool {
	return s != nil && s.UserType == UserTypeMentee
}
