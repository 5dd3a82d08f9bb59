package authsdk

import "context"

// ChangePassword changes the password of the signed-in user.
func (c *SDKClient) ChangePassword(ctx context.Context, accessToken, oldPassword, newPassword string) (*Response[Ack], error) {
	return post[Response[Ack]](ctx, c, "change-password", ChangePasswordRequest{
		AccessToken: accessToken,
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
}

// ForgotPassword sends a password reset code to email.
func (c *SDKClient) ForgotPassword(ctx context.Context, email string) (*Response[CodeDeliveryResult], error) {
	return post[Response[CodeDeliveryResult]](ctx, c, "forgot-password", EmailRequest{Email: email})
}

// ConfirmForgotPassword sets a new password using the reset code.
func (c *SDKClient) ConfirmForgotPassword(ctx context.Context, email, code, newPassword string) (*Response[Ack], error) {
	return post[Response[Ack]](ctx, c, "confirm-forgot-password", ConfirmForgotPasswordRequest{
		Email:            email,
		ConfirmationCode: code,
		NewPassword:      newPassword,
	})
}
