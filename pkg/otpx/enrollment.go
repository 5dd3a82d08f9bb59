// Package otpx builds TOTP enrollment URIs for provider-issued secrets and
// renders them as scannable QR codes.
package otpx

import (
	"errors"
	"fmt"
)

// Fallback label and issuer used when none is configured. They match the
// values existing authenticator entries were enrolled with.
const (
	DefaultLabel  = "NodeCognito"
	DefaultIssuer = "AWS"
)

var (
	// ErrInvalidArgument reports missing or malformed input to the builder.
	ErrInvalidArgument = errors.New("otpx: invalid argument")

	// ErrRendering reports a failure to turn an enrollment URI into an image.
	ErrRendering = errors.New("otpx: rendering failed")
)

// Enrollment carries what is needed to enroll an authenticator app for one
// account. It is built per request and never stored.
type Enrollment struct {
	Secret string // issued by the identity provider, treated as opaque
	Label  string
	Issuer string
}

// URI returns the otpauth URI for e. See EnrollmentURI.
func (e Enrollment) URI() (string, error) {
	return EnrollmentURI(e.Secret, e.Label, e.Issuer)
}

// EnrollmentURI returns
//
//	otpauth://totp/{label}?secret={secret}&issuer={issuer}
//
// An empty label or issuer falls back to DefaultLabel or DefaultIssuer. The
// secret is not checked against the base32 alphabet.
//
// Label and issuer are interpolated without URL encoding so that the string
// is byte-identical to what deployed authenticator entries were created
// from. Values containing '/', '?', '&', '#' or ':' produce a URI that
// standard parsers will split differently.
func EnrollmentURI(secret, label, issuer string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("%w: secret is required", ErrInvalidArgument)
	}
	if label == "" {
		label = DefaultLabel
	}
	if issuer == "" {
		issuer = DefaultIssuer
	}

	return fmt.Sprintf("otpauth://totp/%s?secret=%s&issuer=%s", label, secret, issuer), nil
}
