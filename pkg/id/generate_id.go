// Package id generates and checks request identifiers.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"
)

var (
	reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)
	reUUID  = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[1-5][a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}$`)
)

// NewID32 returns exactly 32 lowercase hex characters. The server stamps it
// on every response as X-Request-Id.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Valid reports whether s is an id clients may send as Ax-Request-Id: the
// NewID32 format or a lowercase canonical UUID. Surrounding space is ignored.
func Valid(s string) bool {
	s = strings.TrimSpace(s)
	return reHex32.MatchString(s) || reUUID.MatchString(s)
}
