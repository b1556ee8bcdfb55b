package digest

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/pbkdf2"
)

const (
	iterations    = 1000
	credentialLen = 32
)

// Digester derives and verifies password credentials with
// PBKDF2-HMAC-SHA256. The per-user salt is the process salt concatenated
// with the username, so renaming a user invalidates the stored digest.
type Digester struct {
	salt string
}

func New(salt string) *Digester {
	return &Digester{salt: salt}
}

func (d *Digester) Password(username, password string) []byte {
	return pbkdf2.Key([]byte(password), d.userSalt(username), iterations, credentialLen, sha256.New)
}

func (d *Digester) Verify(username string, stored []byte, attempted string) bool {
	derived := d.Password(username, attempted)
	return subtle.ConstantTimeCompare(derived, stored) == 1
}

func (d *Digester) userSalt(username string) []byte {
	salt := make([]byte, 0, len(d.salt)+len(username))
	salt = append(salt, d.salt...)
	salt = append(salt, username...)
	return salt
}
