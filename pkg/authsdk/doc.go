/*
Package authsdk provides a client SDK for the Cognito gateway.

# Overview

The gateway exposes the user pool flows of an AWS Cognito app client as
plain JSON routes (sign-up, sign-in, TOTP enrollment, MFA, password reset,
token refresh). SDKClient wraps each route in a typed method:

	client := authsdk.NewSDKClient("https://auth.example.com")

	// Check service health
	health, err := client.GetLiveness(ctx)

	// Register and confirm an account
	_, err = client.SignUp(ctx, "user@example.com", "Passw0rd!")
	_, err = client.ConfirmSignUp(ctx, "user@example.com", "123456")

Routes are mounted under DefaultPrefix ("/api"). Set SDKClient.Prefix when
the gateway is configured with another base path.

# Sign-in and MFA

SignIn returns tokens directly, or a challenge when the account has TOTP
enabled. Answer the challenge with VerifyMFA using the returned session:

	res, err := client.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	if res.Result.ChallengeName == "SOFTWARE_TOKEN_MFA" {
		tokens, err := client.VerifyMFA(ctx, email, code, res.Result.Session)
		...
	}

Enrollment is a three step flow, all authenticated by an access token:

	enrollment, err := client.AssociateTOTP(ctx, accessToken)
	// show enrollment.Result.QRCode to the user
	_, err = client.VerifyTOTP(ctx, accessToken, codeFromApp)
	_, err = client.EnableMFA(ctx, accessToken)

# Token Refresh

RefreshToken returns new access and ID tokens. App clients with a secret
need the username for the secret hash; pass Email or Username, or the last
AccessToken (expired tokens are accepted) and the gateway reads it from
the token's claims:

	tokens, err := client.RefreshToken(ctx, authsdk.RefreshTokenRequest{
		RefreshToken: refreshToken,
		AccessToken:  expiredAccessToken,
	})

# Error Handling

Every non-2xx response is returned as *GatewayError:

	_, err := client.SignIn(ctx, email, password)
	var gwErr *authsdk.GatewayError
	if errors.As(err, &gwErr) {
		fmt.Println(gwErr.StatusCode, gwErr.Message, gwErr.Err)
	}

400 means the gateway rejected the request body, 429 means the caller was
rate limited and 500 means the identity provider call failed.

# Thread Safety

SDKClient holds no mutable state and is safe for concurrent use.
*/
package authsdk
