package http

import (
	"errors"
	"net/http"

	"github.com/uniendoculturas/campus/internal/campus/service"
	"github.com/uniendoculturas/campus/pkg/campussdk"
	"github.com/uniendoculturas/campus/pkg/httpx"
	"github.com/uniendoculturas/campus/pkg/slogx"
)

type SignInHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Sign In Endpoint
//	@Description	Exchange email and password for a JWT access token. Only verified, active accounts can sign in.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		campussdk.SignInRequest	true	"Credentials"
//	@Success		200		{object}	campussdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/signin [post].
func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req campussdk.SignInRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest,
			"email and password are required")
		return
	}

	tok, err := h.AuthService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, campussdk.ErrorCodeInvalidCredentials,
				"Invalid email or password")
		case errors.Is(err, service.ErrNotVerified):
			httpx.WriteError(w, http.StatusForbidden, campussdk.ErrorCodeNotVerified,
				"Verify your email before signing in")
		case errors.Is(err, service.ErrAccountInactive):
			httpx.WriteError(w, http.StatusForbidden, campussdk.ErrorCodeAccountInactive,
				"This account has been deactivated")
		default:
			log.Error("sign in failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
				"Failed to sign in")
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, campussdk.TokenResponse{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		ExpiresIn:   tok.ExpiresIn,
	})
}
