package util

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a signup password with bcrypt. The hash embeds its own
// salt and cost, so CheckPassword keeps working if the cost ever changes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
