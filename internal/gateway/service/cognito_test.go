package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aussiebroadwan/cognitogw/pkg/cryptox"
	"github.com/aussiebroadwan/cognitogw/pkg/otpx"
	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"
)

const (
	testClientID = "1example23456789"
	testSecret   = "secret123"
	testEmail    = "user@example.com"
)

// knownHash is SecretHash(testEmail, testClientID, testSecret).
const knownHash = "W+Zvrwux4wG2dcM/qyQhqlfRZPTe3FdAcs3JkHNhjYo="

func newService(secret string) (*CognitoService, *fakeProvider) {
	fp := &fakeProvider{}
	return NewCognitoService(fp, Settings{ClientID: testClientID, ClientSecret: secret}), fp
}

func TestNewCognitoService_Defaults(t *testing.T) {
	svc := NewCognitoService(&fakeProvider{}, Settings{ClientID: testClientID})

	got := svc.Settings()
	require.Equal(t, otpx.DefaultLabel, got.MFALabel)
	require.Equal(t, otpx.DefaultIssuer, got.MFAIssuer)
	require.Equal(t, otpx.DefaultQRSize, got.QRCodeSize)
	require.False(t, svc.Confidential())
	require.Equal(t, testClientID, svc.ClientID())
}

func TestSecretHashInjection(t *testing.T) {
	ctx := context.Background()

	t.Run("confidential client", func(t *testing.T) {
		svc, fp := newService(testSecret)
		require.True(t, svc.Confidential())

		_, err := svc.SignUp(ctx, testEmail, "Passw0rd!")
		require.NoError(t, err)
		require.Equal(t, knownHash, aws.ToString(fp.signUpIn.SecretHash))

		_, err = svc.SignIn(ctx, testEmail, "Passw0rd!")
		require.NoError(t, err)
		require.Equal(t, knownHash, fp.initiateIn.AuthParameters["SECRET_HASH"])

		_, err = svc.ConfirmSignUp(ctx, testEmail, "123456")
		require.NoError(t, err)
		require.Equal(t, knownHash, aws.ToString(fp.confirmIn.SecretHash))

		_, err = svc.ResendConfirmationCode(ctx, testEmail)
		require.NoError(t, err)
		require.Equal(t, knownHash, aws.ToString(fp.resendIn.SecretHash))

		_, err = svc.ForgotPassword(ctx, testEmail)
		require.NoError(t, err)
		require.Equal(t, knownHash, aws.ToString(fp.forgotIn.SecretHash))

		_, err = svc.ConfirmForgotPassword(ctx, testEmail, "123456", "N3wPassw0rd!")
		require.NoError(t, err)
		require.Equal(t, knownHash, aws.ToString(fp.confirmPwdIn.SecretHash))

		_, err = svc.RespondToMFAChallenge(ctx, "654321", "session-1", testEmail)
		require.NoError(t, err)
		require.Equal(t, knownHash, fp.respondIn.ChallengeResponses["SECRET_HASH"])
	})

	t.Run("public client omits the field", func(t *testing.T) {
		svc, fp := newService("")

		_, err := svc.SignUp(ctx, testEmail, "Passw0rd!")
		require.NoError(t, err)
		require.Nil(t, fp.signUpIn.SecretHash)

		_, err = svc.SignIn(ctx, testEmail, "Passw0rd!")
		require.NoError(t, err)
		require.NotContains(t, fp.initiateIn.AuthParameters, "SECRET_HASH")

		_, err = svc.ConfirmSignUp(ctx, testEmail, "123456")
		require.NoError(t, err)
		require.Nil(t, fp.confirmIn.SecretHash)

		_, err = svc.ResendConfirmationCode(ctx, testEmail)
		require.NoError(t, err)
		require.Nil(t, fp.resendIn.SecretHash)

		_, err = svc.ForgotPassword(ctx, testEmail)
		require.NoError(t, err)
		require.Nil(t, fp.forgotIn.SecretHash)

		_, err = svc.ConfirmForgotPassword(ctx, testEmail, "123456", "N3wPassw0rd!")
		require.NoError(t, err)
		require.Nil(t, fp.confirmPwdIn.SecretHash)

		_, err = svc.RespondToMFAChallenge(ctx, "654321", "session-1", testEmail)
		require.NoError(t, err)
		require.NotContains(t, fp.respondIn.ChallengeResponses, "SECRET_HASH")
	})
}

func TestUpstreamError(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "NotAuthorizedException", Message: "Incorrect username or password."}
	svc, fp := newService("")
	fp.err = apiErr

	_, err := svc.SignIn(context.Background(), testEmail, "wrong")
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	require.Equal(t, "SignIn", upstream.Op)
	require.Equal(t, "NotAuthorizedException", upstream.Code())
	require.ErrorIs(t, err, apiErr)
	require.Equal(t, "SignIn failed: api error NotAuthorizedException: Incorrect username or password.", err.Error())

	plain := &UpstreamError{Op: "SignUp", Err: errors.New("dial tcp: timeout")}
	require.Empty(t, plain.Code())
}

func TestUpstreamError_OperationNames(t *testing.T) {
	ctx := context.Background()
	svc, fp := newService(testSecret)
	fp.err = errors.New("boom")

	calls := map[string]func() error{
		"SignUp":                 func() error { _, err := svc.SignUp(ctx, testEmail, "p"); return err },
		"SignIn":                 func() error { _, err := svc.SignIn(ctx, testEmail, "p"); return err },
		"ConfirmSignUp":          func() error { _, err := svc.ConfirmSignUp(ctx, testEmail, "1"); return err },
		"ResendConfirmationCode": func() error { _, err := svc.ResendConfirmationCode(ctx, testEmail); return err },
		"AssociateSoftwareToken": func() error { _, err := svc.AssociateSoftwareToken(ctx, "at"); return err },
		"VerifySoftwareToken":    func() error { _, err := svc.VerifySoftwareToken(ctx, "at", "1"); return err },
		"EnableMFA":              func() error { _, err := svc.EnableMFA(ctx, "at"); return err },
		"DisableMFA":             func() error { _, err := svc.DisableMFA(ctx, "at"); return err },
		"MFA validation":         func() error { _, err := svc.RespondToMFAChallenge(ctx, "1", "s", testEmail); return err },
		"ChangePassword":         func() error { _, err := svc.ChangePassword(ctx, "at", "a", "b"); return err },
		"ForgotPassword":         func() error { _, err := svc.ForgotPassword(ctx, testEmail); return err },
		"ConfirmForgotPassword":  func() error { _, err := svc.ConfirmForgotPassword(ctx, testEmail, "1", "b"); return err },
		"RefreshToken":           func() error { _, err := svc.RefreshToken(ctx, "rt", testEmail); return err },
	}

	for op, call := range calls {
		t.Run(op, func(t *testing.T) {
			err := call()
			require.EqualError(t, err, op+" failed: boom")
		})
	}
}

func TestSignUp(t *testing.T) {
	svc, fp := newService("")
	fp.signUpOut = cip.SignUpOutput{
		UserConfirmed: false,
		UserSub:       aws.String("sub-123"),
		CodeDeliveryDetails: &types.CodeDeliveryDetailsType{
			AttributeName:  aws.String("email"),
			DeliveryMedium: types.DeliveryMediumTypeEmail,
			Destination:    aws.String("u***@e***"),
		},
	}

	res, err := svc.SignUp(context.Background(), testEmail, "Passw0rd!")
	require.NoError(t, err)
	require.Equal(t, "sub-123", res.UserSub)
	require.False(t, res.UserConfirmed)
	require.Equal(t, "EMAIL", res.CodeDeliveryDetails.DeliveryMedium)
	require.Equal(t, "u***@e***", res.CodeDeliveryDetails.Destination)

	in := fp.signUpIn
	require.Equal(t, testClientID, aws.ToString(in.ClientId))
	require.Equal(t, testEmail, aws.ToString(in.Username))
	require.Equal(t, "Passw0rd!", aws.ToString(in.Password))
	require.Len(t, in.UserAttributes, 1)
	require.Equal(t, "email", aws.ToString(in.UserAttributes[0].Name))
	require.Equal(t, testEmail, aws.ToString(in.UserAttributes[0].Value))
}

func TestSignIn(t *testing.T) {
	t.Run("tokens", func(t *testing.T) {
		svc, fp := newService("")
		fp.initiateOut = cip.InitiateAuthOutput{
			AuthenticationResult: &types.AuthenticationResultType{
				AccessToken:  aws.String("at"),
				IdToken:      aws.String("it"),
				RefreshToken: aws.String("rt"),
				TokenType:    aws.String("Bearer"),
				ExpiresIn:    3600,
			},
		}

		res, err := svc.SignIn(context.Background(), testEmail, "Passw0rd!")
		require.NoError(t, err)
		require.False(t, res.ChallengePending())
		require.Equal(t, "at", res.AuthenticationResult.AccessToken)
		require.Equal(t, int32(3600), res.AuthenticationResult.ExpiresIn)

		require.Equal(t, types.AuthFlowTypeUserPasswordAuth, fp.initiateIn.AuthFlow)
		require.Equal(t, map[string]string{"USERNAME": testEmail, "PASSWORD": "Passw0rd!"}, fp.initiateIn.AuthParameters)
	})

	t.Run("mfa challenge", func(t *testing.T) {
		svc, fp := newService("")
		fp.initiateOut = cip.InitiateAuthOutput{
			ChallengeName: types.ChallengeNameTypeSoftwareTokenMfa,
			Session:       aws.String("challenge-session"),
		}

		res, err := svc.SignIn(context.Background(), testEmail, "Passw0rd!")
		require.NoError(t, err)
		require.True(t, res.ChallengePending())
		require.Equal(t, "SOFTWARE_TOKEN_MFA", res.ChallengeName)
		require.Equal(t, "challenge-session", res.Session)
	})
}

func TestAssociateSoftwareToken(t *testing.T) {
	t.Run("builds uri and qr code", func(t *testing.T) {
		fp := &fakeProvider{associateOut: cip.AssociateSoftwareTokenOutput{SecretCode: aws.String("JBSWY3DPEHPK3PXP")}}
		svc := NewCognitoService(fp, Settings{ClientID: testClientID, MFALabel: "MyApp", MFAIssuer: "MyIssuer", QRCodeSize: 128})

		res, err := svc.AssociateSoftwareToken(context.Background(), "access-token")
		require.NoError(t, err)
		require.Equal(t, "JBSWY3DPEHPK3PXP", res.SecretCode)
		require.Equal(t, "otpauth://totp/MyApp?secret=JBSWY3DPEHPK3PXP&issuer=MyIssuer", res.URI)
		require.Contains(t, res.QRCode, "data:image/png;base64,")
		require.Equal(t, "access-token", aws.ToString(fp.associateIn.AccessToken))
	})

	t.Run("default label and issuer", func(t *testing.T) {
		fp := &fakeProvider{associateOut: cip.AssociateSoftwareTokenOutput{SecretCode: aws.String("ABCD1234")}}
		svc := NewCognitoService(fp, Settings{ClientID: testClientID})

		res, err := svc.AssociateSoftwareToken(context.Background(), "access-token")
		require.NoError(t, err)
		require.Equal(t, "otpauth://totp/NodeCognito?secret=ABCD1234&issuer=AWS", res.URI)
	})

	t.Run("missing secret", func(t *testing.T) {
		svc, _ := newService("")

		_, err := svc.AssociateSoftwareToken(context.Background(), "access-token")
		require.ErrorIs(t, err, otpx.ErrInvalidArgument)
	})
}

func TestVerifySoftwareToken(t *testing.T) {
	svc, fp := newService("")
	fp.verifyOut = cip.VerifySoftwareTokenOutput{Status: types.VerifySoftwareTokenResponseTypeSuccess}

	res, err := svc.VerifySoftwareToken(context.Background(), "access-token", "123456")
	require.NoError(t, err)
	require.Equal(t, "SUCCESS", res.Status)
	require.Equal(t, "123456", aws.ToString(fp.verifyIn.UserCode))
}

func TestMFAPreference(t *testing.T) {
	ctx := context.Background()
	svc, fp := newService("")

	res, err := svc.EnableMFA(ctx, "access-token")
	require.NoError(t, err)
	require.True(t, res.SoftwareTokenMfaEnabled)
	require.True(t, fp.mfaPrefIn.SoftwareTokenMfaSettings.Enabled)
	require.True(t, fp.mfaPrefIn.SoftwareTokenMfaSettings.PreferredMfa)

	res, err = svc.DisableMFA(ctx, "access-token")
	require.NoError(t, err)
	require.False(t, res.SoftwareTokenMfaEnabled)
	require.False(t, fp.mfaPrefIn.SoftwareTokenMfaSettings.Enabled)
	require.False(t, fp.mfaPrefIn.SoftwareTokenMfaSettings.PreferredMfa)
}

func TestRespondToMFAChallenge(t *testing.T) {
	svc, fp := newService("")
	fp.respondOut = cip.RespondToAuthChallengeOutput{
		AuthenticationResult: &types.AuthenticationResultType{
			AccessToken:  aws.String("at"),
			IdToken:      aws.String("it"),
			RefreshToken: aws.String("rt"),
		},
	}

	res, err := svc.RespondToMFAChallenge(context.Background(), "654321", "challenge-session", testEmail)
	require.NoError(t, err)
	require.Equal(t, "rt", res.AuthenticationResult.RefreshToken)

	in := fp.respondIn
	require.Equal(t, types.ChallengeNameTypeSoftwareTokenMfa, in.ChallengeName)
	require.Equal(t, "challenge-session", aws.ToString(in.Session))
	require.Equal(t, testEmail, in.ChallengeResponses["USERNAME"])
	require.Equal(t, "654321", in.ChallengeResponses["SOFTWARE_TOKEN_MFA_CODE"])
}

func TestChangePassword(t *testing.T) {
	svc, fp := newService(testSecret)

	_, err := svc.ChangePassword(context.Background(), "access-token", "old", "new")
	require.NoError(t, err)
	require.Equal(t, "old", aws.ToString(fp.changePwIn.PreviousPassword))
	require.Equal(t, "new", aws.ToString(fp.changePwIn.ProposedPassword))
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("with username on confidential client", func(t *testing.T) {
		svc, fp := newService(testSecret)
		fp.initiateOut = cip.InitiateAuthOutput{
			AuthenticationResult: &types.AuthenticationResultType{AccessToken: aws.String("at2"), IdToken: aws.String("it2")},
		}

		res, err := svc.RefreshToken(ctx, "rt", testEmail)
		require.NoError(t, err)
		require.Equal(t, "at2", res.AccessToken)
		require.Empty(t, res.RefreshToken)

		require.Equal(t, types.AuthFlowTypeRefreshTokenAuth, fp.initiateIn.AuthFlow)
		require.Equal(t, "rt", fp.initiateIn.AuthParameters["REFRESH_TOKEN"])
		require.Equal(t, cryptox.SecretHash(testEmail, testClientID, testSecret), fp.initiateIn.AuthParameters["SECRET_HASH"])
	})

	t.Run("without username", func(t *testing.T) {
		svc, fp := newService(testSecret)
		fp.initiateOut = cip.InitiateAuthOutput{
			AuthenticationResult: &types.AuthenticationResultType{AccessToken: aws.String("at2")},
		}

		_, err := svc.RefreshToken(ctx, "rt", "")
		require.NoError(t, err)
		require.NotContains(t, fp.initiateIn.AuthParameters, "SECRET_HASH")
	})

	t.Run("no authentication result", func(t *testing.T) {
		svc, _ := newService("")

		_, err := svc.RefreshToken(ctx, "rt", "")
		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream)
		require.Equal(t, "RefreshToken", upstream.Op)
	})
}
