package service

import "golang.org/x/crypto/bcrypt"

// Hash produces a bcrypt hash of the password with the default cost.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
