package http

import (
	"net/http"

	"github.com/aussiebroadwan/cognitogw/internal/gateway/domain"
	"github.com/aussiebroadwan/cognitogw/pkg/authsdk"
	"github.com/aussiebroadwan/cognitogw/pkg/slogx"
)

// AccountHandler handles sign-up, confirmation and sign-in.
type AccountHandler struct {
	Service AuthService
}

// HandleSignUp handles POST /signup
//
//	@Summary		Sign up
//	@Description	Registers a new user with email as username. A confirmation code is sent to the email address.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.CredentialsRequest						true	"Email and password"
//	@Success		200		{object}	authsdk.Response[authsdk.SignUpResult]	"Provider sign-up result"
//	@Failure		400		{object}	authsdk.ErrorResponse					"Malformed body or missing field"
//	@Failure		429		{object}	authsdk.ErrorResponse					"Rate limit exceeded"
//	@Failure		500		{object}	authsdk.ErrorResponse					"Provider call failed"
//	@Router			/signup [post].
func (h *AccountHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	const failed = "Signup failed"

	var req authsdk.CredentialsRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeFailure(w, r, failed, err)
		return
	}
	if err := domain.RequireFields("email", req.Email, "password", req.Password); err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	res, err := h.Service.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	slogx.FromContext(r.Context()).Info("user signed up", "user_sub", res.UserSub, "confirmed", res.UserConfirmed)
	writeResult(w, "User signed up successfully. Please check your email for the OTP.", res)
}

// HandleSignIn handles POST /signin
//
//	@Summary		Sign in
//	@Description	Authenticates with email and password. Returns tokens, or a SOFTWARE_TOKEN_MFA challenge with a session
//	@Description	when MFA is enabled; answer it through /verify-mfa.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.CredentialsRequest						true	"Email and password"
//	@Success		200		{object}	authsdk.Response[authsdk.SignInResult]	"Tokens or challenge"
//	@Failure		400		{object}	authsdk.ErrorResponse					"Malformed body or missing field"
//	@Failure		429		{object}	authsdk.ErrorResponse					"Rate limit exceeded"
//	@Failure		500		{object}	authsdk.ErrorResponse					"Provider call failed"
//	@Router			/signin [post].
func (h *AccountHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	const failed = "Signin failed"

	var req authsdk.CredentialsRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeFailure(w, r, failed, err)
		return
	}
	if err := domain.RequireFields("email", req.Email, "password", req.Password); err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	res, err := h.Service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	if res.ChallengePending() {
		slogx.FromContext(r.Context()).Info("sign-in challenge issued", "challenge", res.ChallengeName)
	}
	writeResult(w, "User signed in successfully", res)
}

// HandleConfirmSignUp handles POST /confirm-signup
//
//	@Summary		Confirm sign-up
//	@Description	Confirms a new account with the code sent by email.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.ConfirmSignUpRequest							true	"Email and confirmation code"
//	@Success		200		{object}	authsdk.Response[authsdk.ConfirmSignUpResult]	"Confirmed"
//	@Failure		400		{object}	authsdk.ErrorResponse							"Malformed body or missing field"
//	@Failure		429		{object}	authsdk.ErrorResponse							"Rate limit exceeded"
//	@Failure		500		{object}	authsdk.ErrorResponse							"Provider call failed"
//	@Router			/confirm-signup [post].
func (h *AccountHandler) HandleConfirmSignUp(w http.ResponseWriter, r *http.Request) {
	const failed = "Email confirmation failed"

	var req authsdk.ConfirmSignUpRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeFailure(w, r, failed, err)
		return
	}
	if err := domain.RequireFields("email", req.Email, "confirmationCode", req.ConfirmationCode); err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	res, err := h.Service.ConfirmSignUp(r.Context(), req.Email, req.ConfirmationCode)
	if err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	writeResult(w, "Email confirmed successfully", res)
}

// HandleResendOTP handles POST /resend-otp
//
//	@Summary		Resend confirmation code
//	@Description	Sends a new sign-up confirmation code.
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.EmailRequest								true	"Email"
//	@Success		200		{object}	authsdk.Response[authsdk.CodeDeliveryResult]	"Code delivery details"
//	@Failure		400		{object}	authsdk.ErrorResponse							"Malformed body or missing field"
//	@Failure		429		{object}	authsdk.ErrorResponse							"Rate limit exceeded"
//	@Failure		500		{object}	authsdk.ErrorResponse							"Provider call failed"
//	@Router			/resend-otp [post].
func (h *AccountHandler) HandleResendOTP(w http.ResponseWriter, r *http.Request) {
	const failed = "Failed to resend OTP"

	var req authsdk.EmailRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeFailure(w, r, failed, err)
		return
	}
	if err := domain.RequireFields("email", req.Email); err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	res, err := h.Service.ResendConfirmationCode(r.Context(), req.Email)
	if err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	writeResult(w, "OTP resent successfully", res)
}
