package authsdk

import "context"

// RefreshToken exchanges a refresh token for new access and ID tokens.
// The refresh token itself is not rotated.
func (c *SDKClient) RefreshToken(ctx context.Context, req RefreshTokenRequest) (*TokensResponse, error) {
	return post[TokensResponse](ctx, c, "refresh-token", req)
}
