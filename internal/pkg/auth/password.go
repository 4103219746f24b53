package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for password digests.
const BcryptCost = 12

// dummyDigest is compared against on the unknown-email login path so that a
// failed lookup costs the same as a wrong password. Digest of an
// unguessable throwaway value.
var dummyDigest, _ = bcrypt.GenerateFromPassword([]byte("campusdesk-dummy-credential"), BcryptCost)

// HashPassword produces a salted bcrypt digest. The plaintext is never stored.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a stored digest.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// BurnPasswordCheck performs a throwaway digest comparison. Used to keep
// the unknown-email and wrong-password login paths indistinguishable.
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyDigest, []byte(password))
}
