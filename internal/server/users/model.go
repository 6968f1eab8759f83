package users

import "time"

type User struct {
	ID        string
	Name      string
	Email     string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}

// ResetToken authorizes one password change for UserID until Expires.
type ResetToken struct {
	Token   string
	UserID  string
	Expires time.Time
}
