package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// Crypt encrypts the password using crypto/bcrypt.
func Crypt(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashedPassword), err
}

// VerifyPassword verifies the password is consistent with the hashed password
// in the database.
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
