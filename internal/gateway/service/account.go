package service

import (
	"context"

	"github.com/aussiebroadwan/cognitogw/internal/gateway/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// SignUp registers email as both the username and the email attribute.
func (s *CognitoService) SignUp(ctx context.Context, email, password string) (domain.SignUpResult, error) {
	out, err := s.client.SignUp(ctx, &cip.SignUpInput{
		ClientId:   aws.String(s.settings.ClientID),
		Username:   aws.String(email),
		Password:   aws.String(password),
		SecretHash: s.secretHash(email),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
		},
	})
	if err != nil {
		return domain.SignUpResult{}, &UpstreamError{Op: "SignUp", Err: err}
	}

	return domain.SignUpResult{
		UserConfirmed:       out.UserConfirmed,
		UserSub:             aws.ToString(out.UserSub),
		CodeDeliveryDetails: toCodeDelivery(out.CodeDeliveryDetails),
		Session:             aws.ToString(out.Session),
	}, nil
}

// SignIn starts a USER_PASSWORD_AUTH flow. The result holds tokens, or the
// challenge to answer when MFA is enabled for the account.
func (s *CognitoService) SignIn(ctx context.Context, email, password string) (domain.SignInResult, error) {
	out, err := s.client.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(s.settings.ClientID),
		AuthParameters: s.withSecretHash(map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		}, email),
	})
	if err != nil {
		return domain.SignInResult{}, &UpstreamError{Op: "SignIn", Err: err}
	}

	return domain.SignInResult{
		AuthenticationResult: toAuthenticationResult(out.AuthenticationResult),
		ChallengeName:        string(out.ChallengeName),
		ChallengeParameters:  out.ChallengeParameters,
		Session:              aws.ToString(out.Session),
	}, nil
}

// ConfirmSignUp confirms an account with the code sent on sign-up.
func (s *CognitoService) ConfirmSignUp(ctx context.Context, email, code string) (domain.ConfirmSignUpResult, error) {
	out, err := s.client.ConfirmSignUp(ctx, &cip.ConfirmSignUpInput{
		ClientId:         aws.String(s.settings.ClientID),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
		SecretHash:       s.secretHash(email),
	})
	if err != nil {
		return domain.ConfirmSignUpResult{}, &UpstreamError{Op: "ConfirmSignUp", Err: err}
	}

	return domain.ConfirmSignUpResult{Session: aws.ToString(out.Session)}, nil
}

// ResendConfirmationCode sends a fresh sign-up confirmation code.
func (s *CognitoService) ResendConfirmationCode(ctx context.Context, email string) (domain.CodeDeliveryResult, error) {
	out, err := s.client.ResendConfirmationCode(ctx, &cip.ResendConfirmationCodeInput{
		ClientId:   aws.String(s.settings.ClientID),
		Username:   aws.String(email),
		SecretHash: s.secretHash(email),
	})
	if err != nil {
		return domain.CodeDeliveryResult{}, &UpstreamError{Op: "ResendConfirmationCode", Err: err}
	}

	return domain.CodeDeliveryResult{CodeDeliveryDetails: toCodeDelivery(out.CodeDeliveryDetails)}, nil
}
