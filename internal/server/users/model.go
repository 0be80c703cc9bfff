package users

import "time"

// User is an account record. PasswordHash is a bcrypt hash and must never
// leave the process boundary; use Safe() for anything that crosses the wire.
type User struct {
	ID                 string
	Email              string
	PasswordHash       string
	DefaultProteinGoal int
	DefaultMaxTime     int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// SafeUser is the subset of User fields permitted to cross the network
// boundary. It intentionally has no password field.
type SafeUser struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	DefaultProteinGoal int       `json:"default_protein_goal"`
	DefaultMaxTime     int       `json:"default_max_time"`
	CreatedAt          time.Time `json:"created_at"`
}

// Safe returns the externally visible view of the user.
func (u *User) Safe() SafeUser {
	return SafeUser{
		ID:                 u.ID,
		Email:              u.Email,
		DefaultProteinGoal: u.DefaultProteinGoal,
		DefaultMaxTime:     u.DefaultMaxTime,
		CreatedAt:          u.CreatedAt,
	}
}
