// Package id generates the opaque public identifiers shared by pets,
// applications and users.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns exactly 32 lowercase hex characters (no separators or
// prefixes), 16 bytes of crypto/rand entropy.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
