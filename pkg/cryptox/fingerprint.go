package cryptox

import (
	"crypto/sha256"
	"encoding/base64"
)

// Fingerprint returns a short, deterministic SHA-256 fingerprint of an opaque
// provider value (challenge session, refresh token). It lets log lines
// correlate requests belonging to the same sign-in without recording the
// value itself.
//
// The result is the first 12 characters of the base64url-encoded digest.
func Fingerprint(value string) string {
	if value == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(value))
	return base64.RawURLEncoding.EncodeToString(sum[:])[:12]
}
