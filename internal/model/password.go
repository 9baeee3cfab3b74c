package model

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt-hashes a raw password for the senhaHash wire field, so
// the console never ships plaintext credentials to the backend.
func HashPassword(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
