package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHousekeepingSweepsExpiredCodes(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	base := time.Now().Add(-time.Hour)
	vsvc := &VerificationService{Store: st, Now: func() time.Time { return base }}

	// Two codes issued an hour ago are long expired; one fresh code survives.
	expired1, err := vsvc.IssueCode(ctx, "a@example.com")
	require.NoError(t, err)
	expired2, err := vsvc.IssueCode(ctx, "b@example.com")
	require.NoError(t, err)

	vsvc.Now = nil
	fresh, err := vsvc.IssueCode(ctx, "c@example.com")
	require.NoError(t, err)

	hk := NewHousekeepingService(st, slog.Default(), time.Hour)
	hk.Start()
	hk.Stop()

	_, err = st.VerificationCodes().GetVerificationCode(ctx, "a@example.com", expired1.Code)
	require.Error(t, err)
	_, err = st.VerificationCodes().GetVerificationCode(ctx, "b@example.com", expired2.Code)
	require.Error(t, err)
	_, err = st.VerificationCodes().GetVerificationCode(ctx, "c@example.com", fresh.Code)
	require.NoError(t, err)
}
