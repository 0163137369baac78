package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the service has always used for stored
// digests. Raising it only affects newly created hashes.
const bcryptCost = 10

// HashPassword returns a salted bcrypt digest of password. Each call salts
// independently, so repeated calls produce different digests.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether password is the plaintext behind digest.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
