package auth

import "golang.org/x/crypto/bcrypt"

type PasswordVerifier interface {
	ComparePassword(hashedPassword, password string) bool
}

// HashService checks operator passwords against the bcrypt hash supplied in
// configuration. Hashes are provisioned out of band; nothing here creates them.
type HashService struct{}

func (b *HashService) ComparePassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
