package authsdk

// ============================================================================
// Envelopes
// ============================================================================

// Response is the success envelope returned by most gateway routes. Result
// carries the identity provider's response for the operation.
type Response[T any] struct {
	Message string `json:"message"`
	Result  T      `json:"result"`
}

// ErrorResponse is the body of every non-2xx gateway response.
type ErrorResponse struct {
	// Message names the operation that failed (e.g. "Signin failed")
	Message string `json:"message"`

	// Error is the underlying error text
	Error string `json:"error"`
}

// TokensResponse is returned by /verify-mfa and /refresh-token, which lift
// the tokens to the top level instead of nesting them under result.
type TokensResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"accessToken,omitempty"`
	IdToken      string `json:"idToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`

	// Set instead of tokens when the provider asks for another challenge
	ChallengeName string `json:"challengeName,omitempty"`
	Session       string `json:"session,omitempty"`
}

// ============================================================================
// Request Types
// ============================================================================

// CredentialsRequest is the body of /signup and /signin.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ConfirmSignUpRequest is the body of /confirm-signup.
type ConfirmSignUpRequest struct {
	Email            string `json:"email"`
	ConfirmationCode string `json:"confirmationCode"`
}

// EmailRequest is the body of /resend-otp and /forgot-password.
type EmailRequest struct {
	Email string `json:"email"`
}

// AccessTokenRequest is the body of /associate-totp, /enable-mfa and /disable-mfa.
type AccessTokenRequest struct {
	AccessToken string `json:"accessToken"`
}

// VerifyTOTPRequest is the body of /verify-totp.
type VerifyTOTPRequest struct {
	AccessToken string `json:"accessToken"`
	OTP         string `json:"otp"`
}

// VerifyMFARequest is the body of /verify-mfa. Session is the challenge
// session returned by /signin.
type VerifyMFARequest struct {
	Email   string `json:"email"`
	MFACode string `json:"mfaCode"`
	Session string `json:"session"`
}

// ChangePasswordRequest is the body of /change-password.
type ChangePasswordRequest struct {
	AccessToken string `json:"accessToken"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// ConfirmForgotPasswordRequest is the body of /confirm-forgot-password.
type ConfirmForgotPasswordRequest struct {
	Email            string `json:"email"`
	ConfirmationCode string `json:"confirmationCode"`
	NewPassword      string `json:"newPassword"`
}

// RefreshTokenRequest is the body of /refresh-token.
//
// Clients with a secret need the provider username to compute the secret
// hash. It is taken from Email, then Username, then the claims of the
// (possibly expired) AccessToken.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
	Email        string `json:"email,omitempty"`
	Username     string `json:"username,omitempty"`
	AccessToken  string `json:"accessToken,omitempty"`
}

// ============================================================================
// Result Types (provider field names)
// ============================================================================

// CodeDeliveryDetails describes where a code was sent.
type CodeDeliveryDetails struct {
	AttributeName  string `json:"AttributeName,omitempty"`
	DeliveryMedium string `json:"DeliveryMedium,omitempty"`
	Destination    string `json:"Destination,omitempty"`
}

// SignUpResult is the result of /signup.
type SignUpResult struct {
	UserConfirmed       bool                 `json:"UserConfirmed"`
	UserSub             string               `json:"UserSub,omitempty"`
	CodeDeliveryDetails *CodeDeliveryDetails `json:"CodeDeliveryDetails,omitempty"`
	Session             string               `json:"Session,omitempty"`
}

// AuthenticationResult holds issued tokens.
type AuthenticationResult struct {
	AccessToken  string `json:"AccessToken,omitempty"`
	IdToken      string `json:"IdToken,omitempty"`
	RefreshToken string `json:"RefreshToken,omitempty"`
	TokenType    string `json:"TokenType,omitempty"`
	ExpiresIn    int32  `json:"ExpiresIn,omitempty"`
}

// SignInResult is the result of /signin: tokens, or a challenge to answer
// through /verify-mfa.
type SignInResult struct {
	AuthenticationResult *AuthenticationResult `json:"AuthenticationResult,omitempty"`
	ChallengeName        string                `json:"ChallengeName,omitempty"`
	ChallengeParameters  map[string]string     `json:"ChallengeParameters,omitempty"`
	Session              string                `json:"Session,omitempty"`
}

// ConfirmSignUpResult is the result of /confirm-signup.
type ConfirmSignUpResult struct {
	Session string `json:"Session,omitempty"`
}

// CodeDeliveryResult is the result of /resend-otp and /forgot-password.
type CodeDeliveryResult struct {
	CodeDeliveryDetails *CodeDeliveryDetails `json:"CodeDeliveryDetails,omitempty"`
}

// TOTPEnrollment is the result of /associate-totp.
type TOTPEnrollment struct {
	SecretCode string `json:"SecretCode"`

	// QRCode is a data:image/png;base64 URI of URI
	QRCode string `json:"qrcode"`

	// URI is the otpauth://totp enrollment URI
	URI     string `json:"uri"`
	Session string `json:"Session,omitempty"`
}

// VerifyTOTPResult is the result of /verify-totp.
type VerifyTOTPResult struct {
	Status  string `json:"Status,omitempty"`
	Session string `json:"Session,omitempty"`
}

// MFAPreferenceResult is the result of /enable-mfa and /disable-mfa.
type MFAPreferenceResult struct {
	SoftwareTokenMfaEnabled bool `json:"SoftwareTokenMfaEnabled"`
}

// Ack is the empty result of operations that return nothing but success.
type Ack struct{}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of the gateway's dependencies.
type HealthChecks struct {
	// Provider reports whether the identity provider endpoint resolves
	Provider string `json:"provider"`
}
