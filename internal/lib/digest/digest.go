// Package digest turns plaintext passwords into the hex digests stored for admins and employees.
package digest

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Size is the length of a digest produced by Password.
const Size = sha256.Size * 2

// Password returns the lowercase hex SHA-256 digest of plain.
// No salt is applied, so equal inputs always produce equal digests.
func Password(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// Equal compares two digests in constant time.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
