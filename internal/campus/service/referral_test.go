package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/uniendoculturas/campus/internal/campus/domain"
	"github.com/uniendoculturas/campus/internal/campus/store"
	"github.com/uniendoculturas/campus/pkg/idx"
)

func createTestAdmin(t *testing.T, st store.Store) domain.User {
	t.Helper()

	admin := domain.User{
		ID:           idx.New().String(),
		Name:         "Admin",
		Email:        "admin-" + idx.New().String() + "@example.com",
		IDNumber:     idx.New().String(),
		PasswordHash: "hash",
		Role:         domain.RoleAdmin,
		IsVerified:   true,
		IsActive:     true,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), admin))
	return admin
}

func TestIssueBatchCreatesDistinctCodes(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestAdmin(t, st)

	svc := &ReferralService{Store: st}

	batch, err := svc.IssueBatch(ctx, admin.ID, 10, 25, 30)
	require.NoError(t, err)
	require.Len(t, batch, 10)

	seen := make(map[string]struct{}, len(batch))
	for _, c := range batch {
		require.Len(t, c.Code, 5)
		_, dup := seen[c.Code]
		require.False(t, dup, "duplicate code %q in batch", c.Code)
		seen[c.Code] = struct{}{}

		// The whole batch shares one issuance instant and expiry.
		require.Equal(t, batch[0].IssuedAt, c.IssuedAt)
		require.Equal(t, batch[0].ExpiresAt, c.ExpiresAt)
		require.Equal(t, admin.ID, c.IssuerID)
		require.Equal(t, 25, c.Discount)
		require.False(t, c.Redeemed)
	}

	require.Equal(t, batch[0].IssuedAt.AddDate(0, 0, 30), batch[0].ExpiresAt)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 10)
}

func TestIssueBatchValidatesRequest(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestAdmin(t, st)

	svc := &ReferralService{Store: st}

	cases := []struct {
		name                             string
		quantity, discount, expirationDays int
	}{
		{"zero quantity", 0, 25, 30},
		{"quantity over limit", maxBatchQuantity + 1, 25, 30},
		{"zero discount", 5, 0, 30},
		{"discount over 100", 5, 101, 30},
		{"zero expiration days", 5, 25, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.IssueBatch(ctx, admin.ID, tc.quantity, tc.discount, tc.expirationDays)
			require.ErrorIs(t, err, ErrInvalidBatchRequest)
		})
	}
}

func TestIssueBatchRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := createTestUser(t, st, "student@example.com", true)

	svc := &ReferralService{Store: st}

	_, err := svc.IssueBatch(ctx, user.ID, 5, 25, 30)
	require.ErrorIs(t, err, ErrNotAuthorized)

	_, err = svc.IssueBatch(ctx, idx.New().String(), 5, 25, 30)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestRedeemHappyPath(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestAdmin(t, st)
	user := createTestUser(t, st, "student@example.com", true)

	svc := &ReferralService{Store: st}

	batch, err := svc.IssueBatch(ctx, admin.ID, 1, 50, 30)
	require.NoError(t, err)

	redeemed, err := svc.Redeem(ctx, batch[0].Code, user.ID)
	require.NoError(t, err)
	require.True(t, redeemed.Redeemed)
	require.NotNil(t, redeemed.RedeemerID)
	require.Equal(t, user.ID, *redeemed.RedeemerID)
	require.NotNil(t, redeemed.RedeemedAt)

	got, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.RedeemedReferralCodeID)
	require.Equal(t, batch[0].ID, *got.RedeemedReferralCodeID)
}

func TestRedeemRejectsUnknownCode(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := createTestUser(t, st, "student@example.com", true)

	svc := &ReferralService{Store: st}

	_, err := svc.Redeem(ctx, "NOPE1", user.ID)
	require.ErrorIs(t, err, ErrInvalidReferralCode)
}

func TestRedeemExpiryBoundary(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestAdmin(t, st)

	now := time.Now().Truncate(time.Second)
	svc := &ReferralService{Store: st, Now: func() time.Time { return now }}

	batch, err := svc.IssueBatch(ctx, admin.ID, 2, 25, 7)
	require.NoError(t, err)
	expiry := batch[0].ExpiresAt

	t.Run("exact expiry instant still redeems", func(t *testing.T) {
		user := createTestUser(t, st, "ontime@example.com", true)
		svc.Now = func() time.Time { return expiry }

		_, err := svc.Redeem(ctx, batch[0].Code, user.ID)
		require.NoError(t, err)
	})

	t.Run("one millisecond past expiry is rejected", func(t *testing.T) {
		user := createTestUser(t, st, "late@example.com", true)
		svc.Now = func() time.Time { return expiry.Add(time.Millisecond) }

		_, err := svc.Redeem(ctx, batch[1].Code, user.ID)
		require.ErrorIs(t, err, ErrReferralExpired)
	})
}

func TestRedeemRejectsRedeemedCode(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestAdmin(t, st)
	first := createTestUser(t, st, "first@example.com", true)
	second := createTestUser(t, st, "second@example.com", true)

	svc := &ReferralService{Store: st}

	batch, err := svc.IssueBatch(ctx, admin.ID, 1, 25, 30)
	require.NoError(t, err)

	_, err = svc.Redeem(ctx, batch[0].Code, first.ID)
	require.NoError(t, err)

	// Global single use: the terminal state never transfers.
	_, err = svc.Redeem(ctx, batch[0].Code, second.ID)
	require.ErrorIs(t, err, ErrReferralRedeemed)

	got, err := st.ReferralCodes().GetReferralCodeByCode(ctx, batch[0].Code)
	require.NoError(t, err)
	require.Equal(t, first.ID, *got.RedeemerID)
}

func TestRedeemOncePerUserLifetime(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestAdmin(t, st)
	user := createTestUser(t, st, "student@example.com", true)

	svc := &ReferralService{Store: st}

	batch, err := svc.IssueBatch(ctx, admin.ID, 2, 25, 30)
	require.NoError(t, err)

	_, err = svc.Redeem(ctx, batch[0].Code, user.ID)
	require.NoError(t, err)

	// The second code is declined, and stays consumable for someone else.
	_, err = svc.Redeem(ctx, batch[1].Code, user.ID)
	require.ErrorIs(t, err, ErrReferralAlreadyUsed)

	got, err := st.ReferralCodes().GetReferralCodeByCode(ctx, batch[1].Code)
	require.NoError(t, err)
	require.False(t, got.Redeemed)
	require.Nil(t, got.RedeemerID)

	other := createTestUser(t, st, "other@example.com", true)
	_, err = svc.Redeem(ctx, batch[1].Code, other.ID)
	require.NoError(t, err)
}

func TestRedeemRejectsUnknownRedeemer(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestAdmin(t, st)

	svc := &ReferralService{Store: st}

	batch, err := svc.IssueBatch(ctx, admin.ID, 1, 25, 30)
	require.NoError(t, err)

	_, err = svc.Redeem(ctx, batch[0].Code, idx.New().String())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestConcurrentRedeemSingleWinner(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestAdmin(t, st)

	svc := &ReferralService{Store: st}

	batch, err := svc.IssueBatch(ctx, admin.ID, 1, 25, 30)
	require.NoError(t, err)

	const attempts = 8
	users := make([]domain.User, attempts)
	for i := range users {
		users[i] = createTestUser(t, st, "racer-"+idx.New().String()+"@example.com", true)
	}

	results := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Redeem(ctx, batch[0].Code, users[i].ID)
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range results {
		if err == nil {
			succeeded++
		}
	}
	require.Equal(t, 1, succeeded)

	got, err := st.ReferralCodes().GetReferralCodeByCode(ctx, batch[0].Code)
	require.NoError(t, err)
	require.True(t, got.Redeemed)
}

func TestConcurrentRedeemSameUserSingleWinner(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestAdmin(t, st)
	user := createTestUser(t, st, "student@example.com", true)

	svc := &ReferralService{Store: st}

	// One user racing six valid codes still ends up holding exactly one.
	batch, err := svc.IssueBatch(ctx, admin.ID, 6, 25, 30)
	require.NoError(t, err)

	results := make([]error, len(batch))
	var wg sync.WaitGroup
	for i := range batch {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Redeem(ctx, batch[i].Code, user.ID)
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, ErrReferralAlreadyUsed)
	}
	require.Equal(t, 1, succeeded)

	got, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.RedeemedReferralCodeID)

	// Only the winning code flipped; the losers rolled back whole.
	var redeemedCount int
	for _, rc := range batch {
		rec, err := st.ReferralCodes().GetReferralCodeByCode(ctx, rc.Code)
		require.NoError(t, err)
		if rec.Redeemed {
			redeemedCount++
			require.Equal(t, rec.ID, *got.RedeemedReferralCodeID)
		}
	}
	require.Equal(t, 1, redeemedCount)
}
