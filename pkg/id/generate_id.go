// Package id generates the 32-char lowercase hex identifiers used as
// public keys for profiles, ideas, investments and notifications.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

const rawLen = 16

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	var b [rawLen]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
