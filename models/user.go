package models

// User is an admin account. PasswordHash is a bcrypt hash and never serialized.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
