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

type ReferralMintHandler struct {
	ReferralService *service.ReferralService
}

// ServeHTTP godoc
//
//	@Summary		Referral Batch Issuance Endpoint
//	@Description	Mint a batch of single-use referral discount codes sharing one expiry. This is an admin-only operation.
//	@Tags			Referrals
//	@Accept			json
//	@Produce		json
//	@Param			request	body		campussdk.MintReferralsRequest	true	"Batch parameters"
//	@Success		201		{object}	campussdk.MintReferralsResponse	"the issued codes"
//	@Failure		400		{object}	campussdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	campussdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	campussdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	campussdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/referrals/mint [post].
func (h *ReferralMintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req campussdk.MintReferralsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, campussdk.ErrorCodeUnauthorized,
			"Authentication required")
		return
	}

	batch, err := h.ReferralService.IssueBatch(ctx, userID, req.Quantity, req.Discount, req.ExpirationDays)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBatchRequest):
			httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest,
				"quantity, discount and expiration_days must all be positive; discount is a percentage")
		case errors.Is(err, service.ErrNotAuthorized), errors.Is(err, service.ErrUserNotFound):
			httpx.WriteError(w, http.StatusForbidden, campussdk.ErrorCodeForbidden,
				"Only administrators can mint referral codes")
		default:
			log.Error("failed to mint referral batch", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
				"Failed to mint referral codes")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, campussdk.MintReferralsResponse{
		Codes: toReferralResponses(batch),
	})
}

type ReferralListHandler struct {
	ReferralService *service.ReferralService
}

// ServeHTTP godoc
//
//	@Summary		Referral Listing Endpoint
//	@Description	List every issued referral code, newest batch first. This is an admin-only operation.
//	@Tags			Referrals
//	@Produce		json
//	@Success		200	{object}	campussdk.MintReferralsResponse	"all issued codes"
//	@Failure		401	{object}	campussdk.ErrorResponse			"error, error_description"
//	@Failure		403	{object}	campussdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	campussdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/referrals [get].
func (h *ReferralListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	codes, err := h.ReferralService.List(ctx)
	if err != nil {
		log.Error("failed to list referral codes", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
			"Failed to list referral codes")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, campussdk.MintReferralsResponse{
		Codes: toReferralResponses(codes),
	})
}

func toReferralResponses(codes []domain.ReferralCode) []campussdk.ReferralCodeResponse {
	out := make([]campussdk.ReferralCodeResponse, 0, len(codes))
	for _, c := range codes {
		out = append(out, campussdk.ReferralCodeResponse{
			ID:         c.ID,
			Code:       c.Code,
			Discount:   c.Discount,
			IssuedAt:   c.IssuedAt,
			ExpiresAt:  c.ExpiresAt,
			Redeemed:   c.Redeemed,
			RedeemerID: c.RedeemerID,
			RedeemedAt: c.RedeemedAt,
		})
	}
	return out
}
