// Package hash wraps bcrypt for account password storage. Plain passwords
// never reach the database.
package hash

import "golang.org/x/crypto/bcrypt"

// Password returns a bcrypt hash of the plain-text password.
func Password(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// Check compares a bcrypt hash against the plain-text candidate.
func Check(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
