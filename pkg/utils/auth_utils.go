package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes the plain password using bcrypt. Each call generates a
// fresh random salt, so hashing the same password twice yields different
// digests that both verify.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a plain password with a hashed password.
// A malformed hash simply fails the comparison.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
