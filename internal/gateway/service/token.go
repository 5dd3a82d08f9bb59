package service

import (
	"context"

	"github.com/aussiebroadwan/cognitogw/internal/gateway/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// RefreshToken exchanges a refresh token for new access and ID tokens.
//
// Confidential clients must send a secret hash computed over the provider
// username. It is only attached when username is known; without it the
// provider rejects the call for confidential clients.
func (s *CognitoService) RefreshToken(ctx context.Context, refreshToken, username string) (domain.AuthenticationResult, error) {
	params := map[string]string{"REFRESH_TOKEN": refreshToken}
	if username != "" {
		params = s.withSecretHash(params, username)
	}

	out, err := s.client.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow:       types.AuthFlowTypeRefreshTokenAuth,
		ClientId:       aws.String(s.settings.ClientID),
		AuthParameters: params,
	})
	if err != nil {
		return domain.AuthenticationResult{}, &UpstreamError{Op: "RefreshToken", Err: err}
	}
	if out.AuthenticationResult == nil {
		return domain.AuthenticationResult{}, &UpstreamError{Op: "RefreshToken", Err: errNoAuthenticationResult}
	}

	return *toAuthenticationResult(out.AuthenticationResult), nil
}
