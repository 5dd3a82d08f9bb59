package http

import (
	"net/http"

	"github.com/aussiebroadwan/cognitogw/internal/gateway/domain"
	"github.com/aussiebroadwan/cognitogw/pkg/authsdk"
)

// PasswordHandler handles password change and reset.
type PasswordHandler struct {
	Service AuthService
}

// HandleChangePassword handles POST /change-password
//
//	@Summary		Change password
//	@Description	Changes the password of the user behind the access token.
//	@Tags			Password
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.ChangePasswordRequest			true	"Access token, old and new password"
//	@Success		200		{object}	authsdk.Response[authsdk.Ack]	"Password changed"
//	@Failure		400		{object}	authsdk.ErrorResponse			"Malformed body or missing field"
//	@Failure		429		{object}	authsdk.ErrorResponse			"Rate limit exceeded"
//	@Failure		500		{object}	authsdk.ErrorResponse			"Provider call failed"
//	@Router			/change-password [post].
func (h *PasswordHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	const failed = "Failed to change password"

	var req authsdk.ChangePasswordRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeFailure(w, r, failed, err)
		return
	}
	if err := domain.RequireFields(
		"accessToken", req.AccessToken,
		"oldPassword", req.OldPassword,
		"newPassword", req.NewPassword,
	); err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	res, err := h.Service.ChangePassword(r.Context(), req.AccessToken, req.OldPassword, req.NewPassword)
	if err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	writeResult(w, "Password changed successfully.", res)
}

// HandleForgotPassword handles POST /forgot-password
//
//	@Summary		Start password reset
//	@Description	Sends a password reset code to the user.
//	@Tags			Password
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.EmailRequest								true	"Email"
//	@Success		200		{object}	authsdk.Response[authsdk.CodeDeliveryResult]	"Code delivery details"
//	@Failure		400		{object}	authsdk.ErrorResponse							"Malformed body or missing field"
//	@Failure		429		{object}	authsdk.ErrorResponse							"Rate limit exceeded"
//	@Failure		500		{object}	authsdk.ErrorResponse							"Provider call failed"
//	@Router			/forgot-password [post].
func (h *PasswordHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	const failed = "Failed to initiate password reset"

	var req authsdk.EmailRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeFailure(w, r, failed, err)
		return
	}
	if err := domain.RequireFields("email", req.Email); err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	res, err := h.Service.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	writeResult(w, "Password reset initiated. Please check your email for the OTP.", res)
}

// HandleConfirmForgotPassword handles POST /confirm-forgot-password
//
//	@Summary		Complete password reset
//	@Description	Sets a new password using the code from /forgot-password.
//	@Tags			Password
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.ConfirmForgotPasswordRequest	true	"Email, code and new password"
//	@Success		200		{object}	authsdk.Response[authsdk.Ack]			"Password reset"
//	@Failure		400		{object}	authsdk.ErrorResponse					"Malformed body or missing field"
//	@Failure		429		{object}	authsdk.ErrorResponse					"Rate limit exceeded"
//	@Failure		500		{object}	authsdk.ErrorResponse					"Provider call failed"
//	@Router			/confirm-forgot-password [post].
func (h *PasswordHandler) HandleConfirmForgotPassword(w http.ResponseWriter, r *http.Request) {
	const failed = "Failed to reset password"

	var req authsdk.ConfirmForgotPasswordRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeFailure(w, r, failed, err)
		return
	}
	if err := domain.RequireFields(
		"email", req.Email,
		"confirmationCode", req.ConfirmationCode,
		"newPassword", req.NewPassword,
	); err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	res, err := h.Service.ConfirmForgotPassword(r.Context(), req.Email, req.ConfirmationCode, req.NewPassword)
	if err != nil {
		writeFailure(w, r, failed, err)
		return
	}

	writeResult(w, "Password reset successfully.", res)
}
