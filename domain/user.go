package domain

import "time"

// UserType distinguishes the two roles the platform knows about.
type UserType string

const (
	UserTypeMentor UserType = "mentor"
	UserTypeMentee UserType = "mentee"
)

// User represents an authenticated identity. Identity is immutable once created.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      UserType  `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// MentorCredential is a mentor account together with its login secret.
// Passwords are stored and compared in plaintext; that is an inherited
// behavioral contract of the product, not an oversight (see DESIGN.md).
type MentorCredential struct {
	User
	Password string `json:"password"`
}

// Matches reports whether the supplied password grants access to this mentor.
func (m *MentorCredential) Matches(password string) bool {
	return m != nil && m.Password == password
}
