package http

import (
	"errors"
	"net/http"

	"github.com/uniendoculturas/campus/internal/campus/service"
	"github.com/uniendoculturas/campus/pkg/campussdk"
	"github.com/uniendoculturas/campus/pkg/httpx"
	"github.com/uniendoculturas/campus/pkg/slogx"
)

type VerifyEmailHandler struct {
	Verification *service.VerificationService
}

// ServeHTTP godoc
//
//	@Summary		Email Verification Endpoint
//	@Description	Consume a verification code, marking the account verified. Each code works exactly once; an expired or already-used code is rejected.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body	campussdk.VerifyEmailRequest	true	"Email and code"
//	@Success		204		"account verified"
//	@Failure		400		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		410		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/verify [post].
func (h *VerifyEmailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req campussdk.VerifyEmailRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}
	if req.Email == "" || req.Code == "" {
		httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest,
			"email and code are required")
		return
	}

	if err := h.Verification.Consume(ctx, req.Email, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidVerificationCode):
			httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest,
				"Invalid verification code")
		case errors.Is(err, service.ErrVerificationCodeExpired):
			httpx.WriteError(w, http.StatusGone, campussdk.ErrorCodeCodeExpired,
				"This verification code has expired, request a new one")
		case errors.Is(err, service.ErrAlreadyVerified):
			httpx.WriteError(w, http.StatusConflict, campussdk.ErrorCodeConflict,
				"This account is already verified")
		default:
			log.Error("verification failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
				"Failed to verify account")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ResendVerificationHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Resend Verification Endpoint
//	@Description	Issue a fresh verification code for an unverified account.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body	campussdk.ResendVerificationRequest	true	"Account email"
//	@Success		204		"code sent"
//	@Failure		400		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/resend-verification [post].
func (h *ResendVerificationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req campussdk.ResendVerificationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}
	if req.Email == "" {
		httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest, "email is required")
		return
	}

	if err := h.AuthService.ResendVerification(ctx, req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteError(w, http.StatusNotFound, campussdk.ErrorCodeNotFound,
				"No account with this email")
		case errors.Is(err, service.ErrAlreadyVerified):
			httpx.WriteError(w, http.StatusConflict, campussdk.ErrorCodeConflict,
				"This account is already verified")
		default:
			log.Error("resend verification failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
				"Failed to issue verification code")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
