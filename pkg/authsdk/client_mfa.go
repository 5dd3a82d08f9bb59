package authsdk

import "context"

// AssociateTOTP starts authenticator app enrollment. Show the returned
// QRCode (or URI) to the user, then call VerifyTOTP with a generated code.
func (c *SDKClient) AssociateTOTP(ctx context.Context, accessToken string) (*Response[TOTPEnrollment], error) {
	return post[Response[TOTPEnrollment]](ctx, c, "associate-totp", AccessTokenRequest{AccessToken: accessToken})
}

// VerifyTOTP checks a code from the authenticator app.
func (c *SDKClient) VerifyTOTP(ctx context.Context, accessToken, otp string) (*Response[VerifyTOTPResult], error) {
	return post[Response[VerifyTOTPResult]](ctx, c, "verify-totp", VerifyTOTPRequest{AccessToken: accessToken, OTP: otp})
}

// EnableMFA makes TOTP the user's preferred second factor.
func (c *SDKClient) EnableMFA(ctx context.Context, accessToken string) (*Response[MFAPreferenceResult], error) {
	return post[Response[MFAPreferenceResult]](ctx, c, "enable-mfa", AccessTokenRequest{AccessToken: accessToken})
}

// DisableMFA turns TOTP off.
func (c *SDKClient) DisableMFA(ctx context.Context, accessToken string) (*Response[MFAPreferenceResult], error) {
	return post[Response[MFAPreferenceResult]](ctx, c, "disable-mfa", AccessTokenRequest{AccessToken: accessToken})
}

// VerifyMFA answers the MFA challenge returned by SignIn.
func (c *SDKClient) VerifyMFA(ctx context.Context, email, code, session string) (*TokensResponse, error) {
	return post[TokensResponse](ctx, c, "verify-mfa", VerifyMFARequest{Email: email, MFACode: code, Session: session})
}
