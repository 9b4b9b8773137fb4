package campussdk

import (
	"context"
	"net/http"
)

// MintReferrals issues a batch of referral codes. Admin only.
func (s *Session) MintReferrals(ctx context.Context, req MintReferralsRequest) (*MintReferralsResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/referrals/mint", req)
	if err != nil {
		return nil, err
	}

	var minted MintReferralsResponse
	if err := decodeJSON(resp, &minted, http.StatusCreated); err != nil {
		return nil, err
	}
	return &minted, nil
}

// ListReferrals returns every issued referral code. Admin only.
func (s *Session) ListReferrals(ctx context.Context) ([]ReferralCodeResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/referrals", nil)
	if err != nil {
		return nil, err
	}

	var listed MintReferralsResponse
	if err := decodeJSON(resp, &listed, http.StatusOK); err != nil {
		return nil, err
	}
	return listed.Codes, nil
}

// RedeemReferral consumes a referral code for the signed-in user. A code
// redeems at most once, and a user redeems at most one code ever.
func (s *Session) RedeemReferral(ctx context.Context, code string) (*RedeemReferralResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/referrals/redeem", RedeemReferralRequest{
		Code: code,
	})
	if err != nil {
		return nil, err
	}

	var redeemed RedeemReferralResponse
	if err := decodeJSON(resp, &redeemed, http.StatusOK); err != nil {
		return nil, err
	}
	return &redeemed, nil
}
