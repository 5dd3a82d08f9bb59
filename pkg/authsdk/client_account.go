package authsdk

import "context"

// SignUp registers a new account. The provider sends a confirmation code to
// email, to be submitted through ConfirmSignUp.
func (c *SDKClient) SignUp(ctx context.Context, email, password string) (*Response[SignUpResult], error) {
	return post[Response[SignUpResult]](ctx, c, "signup", CredentialsRequest{Email: email, Password: password})
}

// SignIn authenticates with a password. When MFA is enabled the result holds
// a challenge and session instead of tokens; complete it with VerifyMFA.
func (c *SDKClient) SignIn(ctx context.Context, email, password string) (*Response[SignInResult], error) {
	return post[Response[SignInResult]](ctx, c, "signin", CredentialsRequest{Email: email, Password: password})
}

// ConfirmSignUp confirms an account with the emailed code.
func (c *SDKClient) ConfirmSignUp(ctx context.Context, email, code string) (*Response[ConfirmSignUpResult], error) {
	return post[Response[ConfirmSignUpResult]](ctx, c, "confirm-signup", ConfirmSignUpRequest{Email: email, ConfirmationCode: code})
}

// ResendOTP sends a new sign-up confirmation code.
func (c *SDKClient) ResendOTP(ctx context.Context, email string) (*Response[CodeDeliveryResult], error) {
	return post[Response[CodeDeliveryResult]](ctx, c, "resend-otp", EmailRequest{Email: email})
}
