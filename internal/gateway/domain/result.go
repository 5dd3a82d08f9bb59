package domain

// Result types mirror the field names of the identity provider's API so that
// clients written against the provider's responses keep working.

// CodeDeliveryDetails describes where a confirmation or reset code was sent.
type CodeDeliveryDetails struct {
	AttributeName  string `json:"AttributeName,omitempty"`
	DeliveryMedium string `json:"DeliveryMedium,omitempty"` // SMS or EMAIL
	Destination    string `json:"Destination,omitempty"`    // masked, e.g. a***@e***
}

// SignUpResult is returned after an account is created.
type SignUpResult struct {
	UserConfirmed       bool                 `json:"UserConfirmed"`
	UserSub             string               `json:"UserSub,omitempty"`
	CodeDeliveryDetails *CodeDeliveryDetails `json:"CodeDeliveryDetails,omitempty"`
	Session             string               `json:"Session,omitempty"`
}

// AuthenticationResult holds the tokens issued on successful authentication.
// RefreshToken is empty when tokens come from a refresh.
type AuthenticationResult struct {
	AccessToken  string `json:"AccessToken,omitempty"`
	IdToken      string `json:"IdToken,omitempty"`
	RefreshToken string `json:"RefreshToken,omitempty"`
	TokenType    string `json:"TokenType,omitempty"`
	ExpiresIn    int32  `json:"ExpiresIn,omitempty"`
}

// SignInResult carries either tokens or the challenge that must be answered
// before tokens are issued (e.g. SOFTWARE_TOKEN_MFA with a Session).
type SignInResult struct {
	AuthenticationResult *AuthenticationResult `json:"AuthenticationResult,omitempty"`
	ChallengeName        string                `json:"ChallengeName,omitempty"`
	ChallengeParameters  map[string]string     `json:"ChallengeParameters,omitempty"`
	Session              string                `json:"Session,omitempty"`
}

// ChallengePending reports whether another challenge must be answered.
func (r SignInResult) ChallengePending() bool {
	return r.AuthenticationResult == nil && r.ChallengeName != ""
}

// ConfirmSignUpResult may carry a session usable for passwordless sign-in.
type ConfirmSignUpResult struct {
	Session string `json:"Session,omitempty"`
}

// CodeDeliveryResult is returned when the provider sends a code.
type CodeDeliveryResult struct {
	CodeDeliveryDetails *CodeDeliveryDetails `json:"CodeDeliveryDetails,omitempty"`
}

// TOTPEnrollment is what a user needs to add the account to an
// authenticator app.
type TOTPEnrollment struct {
	SecretCode string `json:"SecretCode"`
	QRCode     string `json:"qrcode"` // PNG data URI of URI
	URI        string `json:"uri"`    // otpauth:// enrollment URI
	Session    string `json:"Session,omitempty"`
}

// VerifyTOTPResult reports whether the authenticator code was accepted.
type VerifyTOTPResult struct {
	Status  string `json:"Status,omitempty"` // SUCCESS or ERROR
	Session string `json:"Session,omitempty"`
}

// MFAPreferenceResult echoes the software token MFA preference that was set.
type MFAPreferenceResult struct {
	SoftwareTokenMfaEnabled bool `json:"SoftwareTokenMfaEnabled"`
}

// Ack is the result of operations that return nothing but success.
type Ack struct{}
