package models

// Admin represents an administrator account. PasswordHash is a bcrypt hash;
// cleartext passwords are never stored or compared directly.
type Admin struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
