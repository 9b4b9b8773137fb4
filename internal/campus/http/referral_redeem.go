package http

import (
	"errors"
	"net/http"

	"github.com/uniendoculturas/campus/internal/campus/service"
	"github.com/uniendoculturas/campus/pkg/campussdk"
	"github.com/uniendoculturas/campus/pkg/httpx"
	"github.com/uniendoculturas/campus/pkg/slogx"
)

type ReferralRedeemHandler struct {
	ReferralService *service.ReferralService
}

// ServeHTTP godoc
//
//	@Summary		Referral Redemption Endpoint
//	@Description	Redeem a referral code for the signed-in user. A code redeems at most once globally, and each user can redeem at most one code in their lifetime.
//	@Tags			Referrals
//	@Accept			json
//	@Produce		json
//	@Param			request	body		campussdk.RedeemReferralRequest		true	"The code to redeem"
//	@Success		200		{object}	campussdk.RedeemReferralResponse	"code, discount"
//	@Failure		400		{object}	campussdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	campussdk.ErrorResponse				"error, error_description"
//	@Failure		409		{object}	campussdk.ErrorResponse				"error, error_description"
//	@Failure		410		{object}	campussdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	campussdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/referrals/redeem [post].
func (h *ReferralRedeemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req campussdk.RedeemReferralRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}
	if req.Code == "" {
		httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest, "code is required")
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, campussdk.ErrorCodeUnauthorized,
			"Authentication required")
		return
	}

	redeemed, err := h.ReferralService.Redeem(ctx, req.Code, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidReferralCode):
			httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest,
				"Invalid referral code")
		case errors.Is(err, service.ErrReferralExpired):
			httpx.WriteError(w, http.StatusGone, campussdk.ErrorCodeCodeExpired,
				"This referral code has expired")
		case errors.Is(err, service.ErrReferralRedeemed):
			httpx.WriteError(w, http.StatusConflict, campussdk.ErrorCodeConflict,
				"This referral code has already been redeemed")
		case errors.Is(err, service.ErrReferralAlreadyUsed):
			httpx.WriteError(w, http.StatusConflict, campussdk.ErrorCodeConflict,
				"You have already redeemed a referral code")
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteError(w, http.StatusUnauthorized, campussdk.ErrorCodeUnauthorized,
				"Account no longer exists")
		default:
			log.Error("failed to redeem referral code", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
				"Failed to redeem referral code")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, campussdk.RedeemReferralResponse{
		Code:     redeemed.Code,
		Discount: redeemed.Discount,
	})
}
