package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt digest. DefaultCost is 10 rounds,
// so two accounts with the same password never share a digest.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash runs bcrypt's constant-time comparison.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
