package service

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/cognitogw/internal/gateway/domain"
	"github.com/aussiebroadwan/cognitogw/pkg/otpx"
	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// AssociateSoftwareToken asks the provider for a new TOTP secret for the
// user behind accessToken and turns it into an enrollment URI and QR code.
// MFA is not active until the code is verified and the preference enabled.
func (s *CognitoService) AssociateSoftwareToken(ctx context.Context, accessToken string) (domain.TOTPEnrollment, error) {
	out, err := s.client.AssociateSoftwareToken(ctx, &cip.AssociateSoftwareTokenInput{
		AccessToken: aws.String(accessToken),
	})
	if err != nil {
		return domain.TOTPEnrollment{}, &UpstreamError{Op: "AssociateSoftwareToken", Err: err}
	}

	secret := aws.ToString(out.SecretCode)
	uri, err := otpx.EnrollmentURI(secret, s.settings.MFALabel, s.settings.MFAIssuer)
	if err != nil {
		return domain.TOTPEnrollment{}, fmt.Errorf("build enrollment uri: %w", err)
	}

	qr, err := otpx.QRCodeDataURL(uri, s.settings.QRCodeSize)
	if err != nil {
		return domain.TOTPEnrollment{}, fmt.Errorf("render enrollment qr code: %w", err)
	}

	return domain.TOTPEnrollment{
		SecretCode: secret,
		QRCode:     qr,
		URI:        uri,
		Session:    aws.ToString(out.Session),
	}, nil
}

// VerifySoftwareToken checks a code from the authenticator app against the
// secret associated above.
func (s *CognitoService) VerifySoftwareToken(ctx context.Context, accessToken, code string) (domain.VerifyTOTPResult, error) {
	out, err := s.client.VerifySoftwareToken(ctx, &cip.VerifySoftwareTokenInput{
		AccessToken: aws.String(accessToken),
		UserCode:    aws.String(code),
	})
	if err != nil {
		return domain.VerifyTOTPResult{}, &UpstreamError{Op: "VerifySoftwareToken", Err: err}
	}

	return domain.VerifyTOTPResult{
		Status:  string(out.Status),
		Session: aws.ToString(out.Session),
	}, nil
}

// EnableMFA makes software token MFA enabled and preferred.
func (s *CognitoService) EnableMFA(ctx context.Context, accessToken string) (domain.MFAPreferenceResult, error) {
	return s.setSoftwareTokenMFA(ctx, "EnableMFA", accessToken, true)
}

// DisableMFA turns software token MFA off.
func (s *CognitoService) DisableMFA(ctx context.Context, accessToken string) (domain.MFAPreferenceResult, error) {
	return s.setSoftwareTokenMFA(ctx, "DisableMFA", accessToken, false)
}

func (s *CognitoService) setSoftwareTokenMFA(ctx context.Context, op, accessToken string, enabled bool) (domain.MFAPreferenceResult, error) {
	_, err := s.client.SetUserMFAPreference(ctx, &cip.SetUserMFAPreferenceInput{
		AccessToken: aws.String(accessToken),
		SoftwareTokenMfaSettings: &types.SoftwareTokenMfaSettingsType{
			Enabled:      enabled,
			PreferredMfa: enabled,
		},
	})
	if err != nil {
		return domain.MFAPreferenceResult{}, &UpstreamError{Op: op, Err: err}
	}

	return domain.MFAPreferenceResult{SoftwareTokenMfaEnabled: enabled}, nil
}

// RespondToMFAChallenge answers the SOFTWARE_TOKEN_MFA challenge returned by
// SignIn. session is the challenge session from that response.
func (s *CognitoService) RespondToMFAChallenge(ctx context.Context, code, session, email string) (domain.SignInResult, error) {
	out, err := s.client.RespondToAuthChallenge(ctx, &cip.RespondToAuthChallengeInput{
		ChallengeName: types.ChallengeNameTypeSoftwareTokenMfa,
		ClientId:      aws.String(s.settings.ClientID),
		Session:       aws.String(session),
		ChallengeResponses: s.withSecretHash(map[string]string{
			"USERNAME":                email,
			"SOFTWARE_TOKEN_MFA_CODE": code,
		}, email),
	})
	if err != nil {
		return domain.SignInResult{}, &UpstreamError{Op: "MFA validation", Err: err}
	}

	return domain.SignInResult{
		AuthenticationResult: toAuthenticationResult(out.AuthenticationResult),
		ChallengeName:        string(out.ChallengeName),
		ChallengeParameters:  out.ChallengeParameters,
		Session:              aws.ToString(out.Session),
	}, nil
}
