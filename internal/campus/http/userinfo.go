package http

import (
	"errors"
	"net/http"

	"github.com/uniendoculturas/campus/internal/campus/store"
	"github.com/uniendoculturas/campus/pkg/campussdk"
	"github.com/uniendoculturas/campus/pkg/httpx"
	"github.com/uniendoculturas/campus/pkg/slogx"
)

type UserInfoHandler struct {
	Store store.Store
}

// ServeHTTP godoc
//
//	@Summary		Current User Endpoint
//	@Description	Return the account behind the bearer token.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	campussdk.UserResponse	"the account"
//	@Failure		401	{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	campussdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users/me [get].
func (h *UserInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, campussdk.ErrorCodeUnauthorized,
			"Authentication required")
		return
	}

	user, err := h.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Token outlived the account.
			httpx.WriteError(w, http.StatusUnauthorized, campussdk.ErrorCodeUnauthorized,
				"Account no longer exists")
			return
		}
		log.Error("failed to load user", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
			"Failed to load account")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
