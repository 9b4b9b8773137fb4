package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uniendoculturas/campus/pkg/campussdk"
)

// TestReferralMintAndList verifies an admin can mint a batch and list it
// back.
func TestReferralMintAndList(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewSDKClient(cc.BaseURL)
	admin := signInAdmin(t, client)

	minted, err := admin.MintReferrals(ctx, campussdk.MintReferralsRequest{
		Quantity:       5,
		Discount:       20,
		ExpirationDays: 30,
	})
	require.NoError(t, err)
	require.Len(t, minted.Codes, 5)

	seen := make(map[string]bool)
	for _, rc := range minted.Codes {
		require.Len(t, rc.Code, 5, "Codes are 5 characters")
		require.Equal(t, 20, rc.Discount)
		require.False(t, rc.Redeemed)
		require.False(t, seen[rc.Code], "Codes within a batch are distinct")
		seen[rc.Code] = true
	}

	listed, err := admin.ListReferrals(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 5)
}

// TestReferralMintRequiresAdmin verifies a regular account cannot mint.
func TestReferralMintRequiresAdmin(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewSDKClient(cc.BaseURL)
	user := registerVerifiedUser(t, cc, client, "student@example.com", "10000001A")

	_, err := user.MintReferrals(ctx, campussdk.MintReferralsRequest{
		Quantity:       1,
		Discount:       10,
		ExpirationDays: 7,
	})
	assertAPIError(t, err, http.StatusForbidden, campussdk.ErrorCodeForbidden,
		"Mint as a regular user")
}

// TestReferralMintValidatesBatch verifies batch parameter validation.
func TestReferralMintValidatesBatch(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewSDKClient(cc.BaseURL)
	admin := signInAdmin(t, client)

	_, err := admin.MintReferrals(ctx, campussdk.MintReferralsRequest{
		Quantity:       0,
		Discount:       10,
		ExpirationDays: 7,
	})
	assertAPIError(t, err, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest,
		"Zero quantity")

	_, err = admin.MintReferrals(ctx, campussdk.MintReferralsRequest{
		Quantity:       1,
		Discount:       150,
		ExpirationDays: 7,
	})
	assertAPIError(t, err, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest,
		"Discount over 100")
}

// TestReferralRedemption verifies the full redemption flow and that a code
// is globally single-use.
func TestReferralRedemption(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewSDKClient(cc.BaseURL)
	admin := signInAdmin(t, client)

	minted, err := admin.MintReferrals(ctx, campussdk.MintReferralsRequest{
		Quantity:       1,
		Discount:       25,
		ExpirationDays: 30,
	})
	require.NoError(t, err)
	code := minted.Codes[0].Code

	alice := registerVerifiedUser(t, cc, client, "alice@example.com", "20000001A")
	bob := registerVerifiedUser(t, cc, client, "bob@example.com", "20000002B")

	redeemed, err := alice.RedeemReferral(ctx, code)
	require.NoError(t, err)
	require.Equal(t, code, redeemed.Code)
	require.Equal(t, 25, redeemed.Discount)

	// The same code cannot be redeemed by anyone else.
	_, err = bob.RedeemReferral(ctx, code)
	assertAPIError(t, err, http.StatusConflict, campussdk.ErrorCodeConflict,
		"Redeeming a used code")
}

// TestReferralOncePerLifetime verifies an account can redeem at most one
// code, ever.
func TestReferralOncePerLifetime(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewSDKClient(cc.BaseURL)
	admin := signInAdmin(t, client)

	minted, err := admin.MintReferrals(ctx, campussdk.MintReferralsRequest{
		Quantity:       2,
		Discount:       15,
		ExpirationDays: 30,
	})
	require.NoError(t, err)

	alice := registerVerifiedUser(t, cc, client, "alice@example.com", "30000001A")

	_, err = alice.RedeemReferral(ctx, minted.Codes[0].Code)
	require.NoError(t, err)

	_, err = alice.RedeemReferral(ctx, minted.Codes[1].Code)
	assertAPIError(t, err, http.StatusConflict, campussdk.ErrorCodeConflict,
		"Second redemption by the same account")

	// The untouched code is still available to someone else.
	bob := registerVerifiedUser(t, cc, client, "bob@example.com", "30000002B")
	redeemed, err := bob.RedeemReferral(ctx, minted.Codes[1].Code)
	require.NoError(t, err)
	require.Equal(t, minted.Codes[1].Code, redeemed.Code)
}

// TestReferralRedeemUnknownCode verifies an unknown code is a bad request.
func TestReferralRedeemUnknownCode(t *testing.T) {
	cc, cleanup := setupCampusContainer(t)
	defer cleanup()

	ctx := t.Context()
	client := campussdk.NewSDKClient(cc.BaseURL)
	alice := registerVerifiedUser(t, cc, client, "alice@example.com", "40000001A")

	_, err := alice.RedeemReferral(ctx, "ZZZZZ")
	assertAPIError(t, err, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest,
		"Unknown referral code")
}
