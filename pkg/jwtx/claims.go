// Package jwtx reads claims from identity-provider tokens.
//
// The gateway never trusts these claims for authorization: every token is
// forwarded to the provider, which performs the real validation. Claims are
// only used to derive values the provider expects alongside the token (for
// example the username in a secret hash) and to enrich log lines.
package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed reports a value that is not a JWT.
var ErrMalformed = errors.New("jwtx: malformed token")

// Token use values set by Cognito.
const (
	TokenUseAccess = "access"
	TokenUseID     = "id"
)

// Claims are the Cognito-specific claims found in access and ID tokens.
type Claims struct {
	jwt.RegisteredClaims

	// Access tokens
	Username string `json:"username,omitempty"`
	ClientID string `json:"client_id,omitempty"`
	Scope    string `json:"scope,omitempty"`

	// ID tokens
	CognitoUsername string `json:"cognito:username,omitempty"`
	Email           string `json:"email,omitempty"`

	// "access" or "id"
	TokenUse string `json:"token_use,omitempty"`
}

// PrincipalName returns the provider username the token was issued to.
func (c Claims) PrincipalName() string {
	if c.Username != "" {
		return c.Username
	}
	return c.CognitoUsername
}

var parser = jwt.NewParser()

// PeekClaims decodes the claims of a JWT without verifying its signature or
// expiry. Expired tokens are accepted on purpose: a client refreshing its
// session still holds its last, expired access token.
func PeekClaims(token string) (Claims, error) {
	var claims Claims
	if token == "" {
		return claims, ErrMalformed
	}

	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return claims, nil
}
