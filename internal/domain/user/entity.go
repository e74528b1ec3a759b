package user

import "time"

type User struct {
	ID            string
	Email         string
	PasswordHash  *string
	OAuthProvider *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasPassword reports whether the account can log in with credentials.
// Google-only accounts carry no password hash.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
