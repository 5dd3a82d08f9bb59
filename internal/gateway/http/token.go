package http

import (
	"net/http"

	"github.com/aussiebroadwan/cognitogw/internal/gateway/domain"
	"github.com/aussiebroadwan/cognitogw/pkg/authsdk"
	"github.com/aussiebroadwan/cognitogw/pkg/cryptox"
	"github.com/aussiebroadwan/cognitogw/pkg/httpx"
	"github.com/aussiebroadwan/cognitogw/pkg/jwtx"
	"github.com/aussiebroadwan/cognitogw/pkg/slogx"
)

// TokenHandler handles token refresh.
type TokenHandler struct {
	Service AuthService
}

// HandleRefreshToken handles POST /refresh-token
//
//	@Summary		Refresh tokens
//	@Description	Exchanges a refresh token for new access and ID tokens, returned at the top level of the body.
//	@Description	App clients with a secret need the username: send email or username, or the last access token
//	@Description	(expired tokens are accepted) and it is read from the token's claims.
//	@Tags			Token
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.RefreshTokenRequest	true	"Refresh token"
//	@Success		200		{object}	authsdk.TokensResponse		"New access and ID tokens"
//	@Failure		400		{object}	authsdk.ErrorResponse		"Malformed body or missing field"
//	@Failure		429		{object}	authsdk.ErrorResponse		"Rate limit exceeded"
//	@Failure		500		{object}	authsdk.ErrorResponse		"Provider call failed"
//	@Router			/refresh-token [post].
func (h *TokenHandler) HandleRefreshToken(w http.ResponseWriter, r *http.Request) {
	const failed = "Failed to refresh token"
	log := slogx.FromContext(r.Context())

	var req authsdk.RefreshTokenRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeFailure(w, r, failed, err)
		return
	}
	if err := domain.RequireFields("refreshToken", req.RefreshToken); err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	log = log.With("refresh_fp", cryptox.Fingerprint(req.RefreshToken))

	username := refreshUsername(req)
	if username == "" && req.AccessToken != "" {
		log.Warn("could not read username from access token")
	}

	res, err := h.Service.RefreshToken(r.Context(), req.RefreshToken, username)
	if err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	log.Info("tokens refreshed")
	httpx.WriteJSON(w, http.StatusOK, authsdk.TokensResponse{
		Message:     "Token refreshed successfully",
		AccessToken: res.AccessToken,
		IdToken:     res.IdToken,
	})
}

// refreshUsername picks the provider username for the refresh secret hash.
func refreshUsername(req authsdk.RefreshTokenRequest) string {
	if req.Email != "" {
		return req.Email
	}
	if req.Username != "" {
		return req.Username
	}
	if req.AccessToken == "" {
		return ""
	}

	claims, err := jwtx.PeekClaims(req.AccessToken)
	if err != nil {
		return ""
	}
	return claims.PrincipalName()
}
