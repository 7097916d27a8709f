package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the cost factor used when hashing admin passwords.
const BcryptCost = 12

// HashPassword hashes a cleartext password with bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares a cleartext password against its bcrypt hash.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
