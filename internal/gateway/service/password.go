package service

import (
	"context"

	"github.com/aussiebroadwan/cognitogw/internal/gateway/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
)

// ChangePassword changes the password of the user behind accessToken.
func (s *CognitoService) ChangePassword(ctx context.Context, accessToken, oldPassword, newPassword string) (domain.Ack, error) {
	_, err := s.client.ChangePassword(ctx, &cip.ChangePasswordInput{
		AccessToken:      aws.String(accessToken),
		PreviousPassword: aws.String(oldPassword),
		ProposedPassword: aws.String(newPassword),
	})
	if err != nil {
		return domain.Ack{}, &UpstreamError{Op: "ChangePassword", Err: err}
	}
	return domain.Ack{}, nil
}

// ForgotPassword starts a password reset by sending a code to the user.
func (s *CognitoService) ForgotPassword(ctx context.Context, email string) (domain.CodeDeliveryResult, error) {
	out, err := s.client.ForgotPassword(ctx, &cip.ForgotPasswordInput{
		ClientId:   aws.String(s.settings.ClientID),
		Username:   aws.String(email),
		SecretHash: s.secretHash(email),
	})
	if err != nil {
		return domain.CodeDeliveryResult{}, &UpstreamError{Op: "ForgotPassword", Err: err}
	}

	return domain.CodeDeliveryResult{CodeDeliveryDetails: toCodeDelivery(out.CodeDeliveryDetails)}, nil
}

// ConfirmForgotPassword sets newPassword using the code from ForgotPassword.
func (s *CognitoService) ConfirmForgotPassword(ctx context.Context, email, code, newPassword string) (domain.Ack, error) {
	_, err := s.client.ConfirmForgotPassword(ctx, &cip.ConfirmForgotPasswordInput{
		ClientId:         aws.String(s.settings.ClientID),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
		Password:         aws.String(newPassword),
		SecretHash:       s.secretHash(email),
	})
	if err != nil {
		return domain.Ack{}, &UpstreamError{Op: "ConfirmForgotPassword", Err: err}
	}
	return domain.Ack{}, nil
}
