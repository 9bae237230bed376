package service

import "golang.org/x/crypto/bcrypt"

// MinPasswordLength is enforced at signup.
const MinPasswordLength = 6

// HashPassword returns a bcrypt hash of the raw password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether candidate matches the stored hash.
// bcrypt's comparison is constant-time internally.
func CheckPassword(hash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
