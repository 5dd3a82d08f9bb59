package http

import (
	"net/http"

	"github.com/aussiebroadwan/cognitogw/internal/gateway/domain"
	"github.com/aussiebroadwan/cognitogw/pkg/authsdk"
	"github.com/aussiebroadwan/cognitogw/pkg/cryptox"
	"github.com/aussiebroadwan/cognitogw/pkg/httpx"
	"github.com/aussiebroadwan/cognitogw/pkg/slogx"
)

// MFAHandler handles TOTP enrollment and the MFA sign-in challenge.
type MFAHandler struct {
	Service AuthService
}

// HandleAssociateTOTP handles POST /associate-totp
//
//	@Summary		Start TOTP enrollment
//	@Description	Creates a TOTP secret for the user behind the access token and returns it with an otpauth URI and a
//	@Description	PNG QR code data URI for authenticator apps.
//	@Tags			MFA
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.AccessTokenRequest						true	"Access token"
//	@Success		200		{object}	authsdk.Response[authsdk.TOTPEnrollment]	"Secret, URI and QR code"
//	@Failure		400		{object}	authsdk.ErrorResponse						"Malformed body or missing field"
//	@Failure		429		{object}	authsdk.ErrorResponse						"Rate limit exceeded"
//	@Failure		500		{object}	authsdk.ErrorResponse						"Provider call or QR rendering failed"
//	@Router			/associate-totp [post].
func (h *MFAHandler) HandleAssociateTOTP(w http.ResponseWriter, r *http.Request) {
	const failed = "Failed to associate TOTP"

	var req authsdk.AccessTokenRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeFailure(w, r, failed, err)
		return
	}
	if err := domain.RequireFields("accessToken", req.AccessToken); err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	res, err := h.Service.AssociateSoftwareToken(r.Context(), req.AccessToken)
	if err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	httpx.NoCache(w)
	writeResult(w, "TOTP associated successfully. Use this secret in your Authenticator app.", res)
}

// HandleVerifyTOTP handles POST /verify-totp
//
//	@Summary		Verify TOTP code
//	@Description	Verifies a code generated by the authenticator app against the associated secret.
//	@Tags			MFA
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.VerifyTOTPRequest							true	"Access token and code"
//	@Success		200		{object}	authsdk.Response[authsdk.VerifyTOTPResult]	"Verification status"
//	@Failure		400		{object}	authsdk.ErrorResponse						"Malformed body or missing field"
//	@Failure		429		{object}	authsdk.ErrorResponse						"Rate limit exceeded"
//	@Failure		500		{object}	authsdk.ErrorResponse						"Provider call failed"
//	@Router			/verify-totp [post].
func (h *MFAHandler) HandleVerifyTOTP(w http.ResponseWriter, r *http.Request) {
	const failed = "Failed to verify TOTP"

	var req authsdk.VerifyTOTPRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeFailure(w, r, failed, err)
		return
	}
	if err := domain.RequireFields("accessToken", req.AccessToken, "otp", req.OTP); err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	res, err := h.Service.VerifySoftwareToken(r.Context(), req.AccessToken, req.OTP)
	if err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	writeResult(w, "TOTP verified successfully.", res)
}

// HandleEnableMFA handles POST /enable-mfa
//
//	@Summary		Enable MFA
//	@Description	Marks software token MFA as enabled and preferred for the user.
//	@Tags			MFA
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.AccessTokenRequest							true	"Access token"
//	@Success		200		{object}	authsdk.Response[authsdk.MFAPreferenceResult]	"Preference set"
//	@Failure		400		{object}	authsdk.ErrorResponse							"Malformed body or missing field"
//	@Failure		429		{object}	authsdk.ErrorResponse							"Rate limit exceeded"
//	@Failure		500		{object}	authsdk.ErrorResponse							"Provider call failed"
//	@Router			/enable-mfa [post].
func (h *MFAHandler) HandleEnableMFA(w http.ResponseWriter, r *http.Request) {
	h.setPreference(w, r, true)
}

// HandleDisableMFA handles POST /disable-mfa
//
//	@Summary		Disable MFA
//	@Description	Turns software token MFA off for the user.
//	@Tags			MFA
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.AccessTokenRequest							true	"Access token"
//	@Success		200		{object}	authsdk.Response[authsdk.MFAPreferenceResult]	"Preference set"
//	@Failure		400		{object}	authsdk.ErrorResponse							"Malformed body or missing field"
//	@Failure		429		{object}	authsdk.ErrorResponse							"Rate limit exceeded"
//	@Failure		500		{object}	authsdk.ErrorResponse							"Provider call failed"
//	@Router			/disable-mfa [post].
func (h *MFAHandler) HandleDisableMFA(w http.ResponseWriter, r *http.Request) {
	h.setPreference(w, r, false)
}

func (h *MFAHandler) setPreference(w http.ResponseWriter, r *http.Request, enable bool) {
	failed, succeeded := "Failed to disable MFA", "MFA disabled successfully."
	if enable {
		failed, succeeded = "Failed to enable MFA", "MFA enabled successfully."
	}

	var req authsdk.AccessTokenRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeFailure(w, r, failed, err)
		return
	}
	if err := domain.RequireFields("accessToken", req.AccessToken); err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	var (
		res domain.MFAPreferenceResult
		err error
	)
	if enable {
		res, err = h.Service.EnableMFA(r.Context(), req.AccessToken)
	} else {
		res, err = h.Service.DisableMFA(r.Context(), req.AccessToken)
	}
	if err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	slogx.FromContext(r.Context()).Info("mfa preference updated", "enabled", res.SoftwareTokenMfaEnabled)
	writeResult(w, succeeded, res)
}

// HandleVerifyMFA handles POST /verify-mfa
//
//	@Summary		Answer MFA challenge
//	@Description	Completes a sign-in that returned a SOFTWARE_TOKEN_MFA challenge. Tokens are returned at the top
//	@Description	level of the body. If the provider asks for another challenge, challengeName and session are
//	@Description	returned instead.
//	@Tags			MFA
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.VerifyMFARequest	true	"Email, code and challenge session"
//	@Success		200		{object}	authsdk.TokensResponse		"Tokens"
//	@Failure		400		{object}	authsdk.ErrorResponse		"Malformed body or missing field"
//	@Failure		429		{object}	authsdk.ErrorResponse		"Rate limit exceeded"
//	@Failure		500		{object}	authsdk.ErrorResponse		"Provider call failed"
//	@Router			/verify-mfa [post].
func (h *MFAHandler) HandleVerifyMFA(w http.ResponseWriter, r *http.Request) {
	const failed = "MFA verification failed"
	log := slogx.FromContext(r.Context())

	var req authsdk.VerifyMFARequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeFailure(w, r, failed, err)
		return
	}
	if err := domain.RequireFields("email", req.Email, "mfaCode", req.MFACode, "session", req.Session); err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	log = log.With("session_fp", cryptox.Fingerprint(req.Session))

	res, err := h.Service.RespondToMFAChallenge(r.Context(), req.MFACode, req.Session, req.Email)
	if err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	if res.ChallengePending() {
		log.Info("mfa answered, further challenge issued", "challenge", res.ChallengeName)
		httpx.WriteJSON(w, http.StatusOK, authsdk.TokensResponse{
			Message:       "Additional challenge required",
			ChallengeName: res.ChallengeName,
			Session:       res.Session,
		})
		return
	}

	var tokens domain.AuthenticationResult
	if res.AuthenticationResult != nil {
		tokens = *res.AuthenticationResult
	}

	log.Info("mfa verified")
	httpx.WriteJSON(w, http.StatusOK, authsdk.TokensResponse{
		Message:      "MFA verification successful",
		AccessToken:  tokens.AccessToken,
		IdToken:      tokens.IdToken,
		RefreshToken: tokens.RefreshToken,
	})
}
