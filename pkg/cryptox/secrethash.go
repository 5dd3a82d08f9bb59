package cryptox

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SecretHash computes the SECRET_HASH value Cognito requires from app clients
// configured with a client secret:
//
//	Base64(HMAC_SHA256(key = clientSecret, message = username + clientID))
//
// The secret is used as raw bytes and the message has no separator. When no
// secret is configured the empty string is returned and callers must omit the
// field from the provider request entirely.
func SecretHash(username, clientID, clientSecret string) string {
	if clientSecret == "" {
		return ""
	}

	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(username + clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
