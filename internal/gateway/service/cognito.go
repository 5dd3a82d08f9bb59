package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/cognitogw/internal/gateway/domain"
	"github.com/aussiebroadwan/cognitogw/pkg/cryptox"
	"github.com/aussiebroadwan/cognitogw/pkg/otpx"
	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
)

// IdentityProvider is the subset of the Cognito user pool API the gateway
// calls. *cognitoidentityprovider.Client satisfies it.
type IdentityProvider interface {
	SignUp(ctx context.Context, params *cip.SignUpInput, optFns ...func(*cip.Options)) (*cip.SignUpOutput, error)
	InitiateAuth(ctx context.Context, params *cip.InitiateAuthInput, optFns ...func(*cip.Options)) (*cip.InitiateAuthOutput, error)
	ConfirmSignUp(ctx context.Context, params *cip.ConfirmSignUpInput, optFns ...func(*cip.Options)) (*cip.ConfirmSignUpOutput, error)
	ResendConfirmationCode(ctx context.Context, params *cip.ResendConfirmationCodeInput, optFns ...func(*cip.Options)) (*cip.ResendConfirmationCodeOutput, error)
	AssociateSoftwareToken(ctx context.Context, params *cip.AssociateSoftwareTokenInput, optFns ...func(*cip.Options)) (*cip.AssociateSoftwareTokenOutput, error)
	VerifySoftwareToken(ctx context.Context, params *cip.VerifySoftwareTokenInput, optFns ...func(*cip.Options)) (*cip.VerifySoftwareTokenOutput, error)
	SetUserMFAPreference(ctx context.Context, params *cip.SetUserMFAPreferenceInput, optFns ...func(*cip.Options)) (*cip.SetUserMFAPreferenceOutput, error)
	RespondToAuthChallenge(ctx context.Context, params *cip.RespondToAuthChallengeInput, optFns ...func(*cip.Options)) (*cip.RespondToAuthChallengeOutput, error)
	ChangePassword(ctx context.Context, params *cip.ChangePasswordInput, optFns ...func(*cip.Options)) (*cip.ChangePasswordOutput, error)
	ForgotPassword(ctx context.Context, params *cip.ForgotPasswordInput, optFns ...func(*cip.Options)) (*cip.ForgotPasswordOutput, error)
	ConfirmForgotPassword(ctx context.Context, params *cip.ConfirmForgotPasswordInput, optFns ...func(*cip.Options)) (*cip.ConfirmForgotPasswordOutput, error)
}

// Settings configure a CognitoService. They are copied on construction.
type Settings struct {
	ClientID     string
	ClientSecret string // optional; when set every call carries a secret hash
	UserPoolID   string

	MFALabel   string // defaults to otpx.DefaultLabel
	MFAIssuer  string // defaults to otpx.DefaultIssuer
	QRCodeSize int    // defaults to otpx.DefaultQRSize
}

// UpstreamError wraps a failed identity provider call. Op names the
// operation and Err is the provider's error, unmodified.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Op + " failed: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Code returns the provider error code (e.g. NotAuthorizedException), or ""
// when the failure did not come from the provider API.
func (e *UpstreamError) Code() string {
	var apiErr smithy.APIError
	if errors.As(e.Err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

var errNoAuthenticationResult = errors.New("provider returned no authentication result")

// CognitoService maps gateway operations one to one onto Cognito user pool
// API calls. It holds no per-user state and is safe for concurrent use.
type CognitoService struct {
	client   IdentityProvider
	settings Settings
}

// NewCognitoService returns a service calling client with the given settings.
func NewCognitoService(client IdentityProvider, settings Settings) *CognitoService {
	if settings.MFALabel == "" {
		settings.MFALabel = otpx.DefaultLabel
	}
	if settings.MFAIssuer == "" {
		settings.MFAIssuer = otpx.DefaultIssuer
	}
	if settings.QRCodeSize <= 0 {
		settings.QRCodeSize = otpx.DefaultQRSize
	}
	return &CognitoService{client: client, settings: settings}
}

// Settings returns the effective settings, defaults applied.
func (s *CognitoService) Settings() Settings {
	return s.settings
}

// ClientID returns the app client ID sent with unauthenticated calls.
func (s *CognitoService) ClientID() string {
	return s.settings.ClientID
}

// Confidential reports whether a client secret is configured.
func (s *CognitoService) Confidential() bool {
	return s.settings.ClientSecret != ""
}

// secretHash returns the SecretHash field value for username, or nil so the
// field is omitted when no client secret is configured.
func (s *CognitoService) secretHash(username string) *string {
	h := cryptox.SecretHash(username, s.settings.ClientID, s.settings.ClientSecret)
	if h == "" {
		return nil
	}
	return aws.String(h)
}

// withSecretHash adds SECRET_HASH to an auth parameter map when applicable.
func (s *CognitoService) withSecretHash(params map[string]string, username string) map[string]string {
	if h := s.secretHash(username); h != nil {
		params["SECRET_HASH"] = *h
	}
	return params
}

func toCodeDelivery(d *types.CodeDeliveryDetailsType) *domain.CodeDeliveryDetails {
	if d == nil {
		return nil
	}
	return &domain.CodeDeliveryDetails{
		AttributeName:  aws.ToString(d.AttributeName),
		DeliveryMedium: string(d.DeliveryMedium),
		Destination:    aws.ToString(d.Destination),
	}
}

func toAuthenticationResult(r *types.AuthenticationResultType) *domain.AuthenticationResult {
	if r == nil {
		return nil
	}
	return &domain.AuthenticationResult{
		AccessToken:  aws.ToString(r.AccessToken),
		IdToken:      aws.ToString(r.IdToken),
		RefreshToken: aws.ToString(r.RefreshToken),
		TokenType:    aws.ToString(r.TokenType),
		ExpiresIn:    r.ExpiresIn,
	}
}
