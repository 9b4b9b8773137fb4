package http

import (
	"errors"
	"net/http"

	"github.com/uniendoculturas/campus/internal/campus/domain"
	"github.com/uniendoculturas/campus/internal/campus/service"
	"github.com/uniendoculturas/campus/pkg/campussdk"
	"github.com/uniendoculturas/campus/pkg/httpx"
	"github.com/uniendoculturas/campus/pkg/slogx"
)

type SignUpHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Account Registration Endpoint
//	@Description	Register a new student account. The account starts unverified; a verification code is emailed to the address and must be consumed via /v1/auth/verify before the account can sign in.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		campussdk.SignUpRequest	true	"Sign up request"
//	@Success		201		{object}	campussdk.UserResponse	"the new account"
//	@Failure		400		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/signup [post].
func (h *SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req campussdk.SignUpRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	user, err := h.AuthService.SignUp(ctx, service.SignUpRequest{
		Name:       req.Name,
		Email:      req.Email,
		IDNumber:   req.IDNumber,
		Password:   req.Password,
		PhotoURL:   req.PhotoURL,
		Newsletter: req.Newsletter,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSignUp):
			httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest,
				"Name, email, id number and a password of at least 8 characters are required")
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteError(w, http.StatusConflict, campussdk.ErrorCodeConflict,
				"An account with this email or id number already exists")
		default:
			log.Error("sign up failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
				"Failed to create account")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

func toUserResponse(u domain.User) campussdk.UserResponse {
	return campussdk.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		PhotoURL:   u.PhotoURL,
		Newsletter: u.Newsletter,
		IsVerified: u.IsVerified,
	}
}
