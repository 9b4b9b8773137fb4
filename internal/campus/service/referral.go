package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/uniendoculturas/campus/internal/campus/domain"
	"github.com/uniendoculturas/campus/internal/campus/store"
	"github.com/uniendoculturas/campus/pkg/cryptox"
	"github.com/uniendoculturas/campus/pkg/idx"
	"github.com/uniendoculturas/campus/pkg/slogx"
)

const (
	// referralCodeLength is the character length of generated codes.
	referralCodeLength = 5

	// maxBatchQuantity bounds a single issuance request.
	maxBatchQuantity = 500

	// maxCollisionRetries bounds regeneration attempts when a generated code
	// collides with an existing one.
	maxCollisionRetries = 10
)

var (
	ErrInvalidBatchRequest  = errors.New("invalid referral batch request")
	ErrNotAuthorized        = errors.New("user is not authorized to issue referral codes")
	ErrInvalidReferralCode  = errors.New("referral code not found")
	ErrReferralExpired      = errors.New("referral code has expired")
	ErrReferralRedeemed     = errors.New("referral code has already been redeemed")
	ErrReferralAlreadyUsed  = errors.New("user has already redeemed a referral code")
	ErrReferralCodeConflict = errors.New("could not generate a unique referral code")
)

// ReferralService issues batches of discount codes and redeems them under
// two single-use constraints: a code is redeemed at most once, and a user
// redeems at most one code in their lifetime.
type ReferralService struct {
	Store store.Store

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *ReferralService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// IssueBatch creates quantity codes sharing one issuance time and expiry.
// Only admins may issue. The batch is inserted in a single transaction:
// callers observe either all codes or none.
func (s *ReferralService) IssueBatch(
	ctx context.Context,
	issuerID string,
	quantity int,
	discount int,
	expirationDays int,
) ([]domain.ReferralCode, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the request shape before any lookup.
	if quantity < 1 || quantity > maxBatchQuantity ||
		discount < 1 || discount > 100 ||
		expirationDays < 1 {
		return nil, ErrInvalidBatchRequest
	}

	// 2. Only the admin role mints codes.
	issuer, err := s.Store.Users().GetUserByID(ctx, issuerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error("failed to fetch issuer", slog.Any("error", err))
		return nil, err
	}
	if issuer.Role != domain.RoleAdmin {
		log.Warn("referral batch issuance attempted without admin role",
			slog.String("issuer_id", issuerID),
			slog.String("role", issuer.Role),
		)
		return nil, ErrNotAuthorized
	}

	// 3. Generate codes, deduplicating within the batch.
	codes, err := generateBatchCodes(quantity)
	if err != nil {
		return nil, err
	}

	issuedAt := s.now()
	expiresAt := issuedAt.AddDate(0, 0, expirationDays)

	batch := make([]domain.ReferralCode, 0, quantity)
	for _, code := range codes {
		batch = append(batch, domain.ReferralCode{
			ID:        idx.New().String(),
			Code:      code,
			IssuerID:  issuer.ID,
			Discount:  discount,
			IssuedAt:  issuedAt,
			ExpiresAt: expiresAt,
		})
	}

	// 4. Insert as one unit. A collision with a previously issued code is
	// retried with a fresh string; any other failure rolls the batch back.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		for i := range batch {
			if err := insertWithRetry(ctx, tx, &batch[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("referral batch issued",
		slog.String("issuer_id", issuer.ID),
		slog.Int("quantity", quantity),
		slog.Int("discount", discount),
		slog.Time("expires_at", expiresAt),
	)

	return batch, nil
}

// Redeem consumes a code for a redeemer. Check order is fixed: existence,
// expiry, code-already-redeemed, redeemer-already-holds-one. The terminal
// state flip and the redeemer's back-reference commit together; conditional
// updates on both rows collapse concurrent attempts to a single success.
func (s *ReferralService) Redeem(ctx context.Context, code, redeemerID string) (domain.ReferralCode, error) {
	log := slogx.FromContext(ctx)

	var redeemed domain.ReferralCode
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. The code must exist before anything else is inspected.
		rec, err := tx.ReferralCodes().GetReferralCodeByCode(ctx, code)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidReferralCode
			}
			return err
		}

		// 2. The redeemer is a caller-supplied precondition.
		redeemer, err := tx.Users().GetUserByID(ctx, redeemerID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		// 3. Expiry. Redemption at the exact expiry instant still passes.
		now := s.now()
		if rec.Expired(now) {
			return ErrReferralExpired
		}

		// 4. Terminal-state and one-per-user checks, in that order.
		if rec.Redeemed {
			return ErrReferralRedeemed
		}
		if redeemer.RedeemedReferralCodeID != nil {
			return ErrReferralAlreadyUsed
		}

		// 5. Conditional flip on the code row.
		ok, err := tx.ReferralCodes().MarkReferralCodeRedeemed(ctx, rec.ID, redeemer.ID, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrReferralRedeemed
		}

		// 6. Conditional set of the redeemer's back-reference.
		ok, err = tx.Users().SetRedeemedReferralCode(ctx, redeemer.ID, rec.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrReferralAlreadyUsed
		}

		rec.Redeemed = true
		rec.RedeemerID = &redeemer.ID
		rec.RedeemedAt = &now
		redeemed = rec
		return nil
	})
	if err != nil {
		return domain.ReferralCode{}, err
	}

	log.Info("referral code redeemed",
		slog.String("code", redeemed.Code),
		slog.String("redeemer_id", redeemerID),
		slog.Int("discount", redeemed.Discount),
	)

	return redeemed, nil
}

// List returns all issued codes, newest batch first.
func (s *ReferralService) List(ctx context.Context) ([]domain.ReferralCode, error) {
	return s.Store.ReferralCodes().ListReferralCodes(ctx)
}

// generateBatchCodes produces quantity distinct code strings.
func generateBatchCodes(quantity int) ([]string, error) {
	codes := make([]string, 0, quantity)
	seen := make(map[string]struct{}, quantity)

	attempts := 0
	for len(codes) < quantity {
		if attempts > quantity*maxCollisionRetries {
			return nil, ErrReferralCodeConflict
		}
		attempts++

		code, err := cryptox.GenerateAlphanumericCode(referralCodeLength)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes, nil
}

// insertWithRetry inserts a code row, regenerating the code string when it
// collides with one issued in an earlier batch.
func insertWithRetry(ctx context.Context, tx store.Tx, c *domain.ReferralCode) error {
	for attempt := 0; attempt < maxCollisionRetries; attempt++ {
		err := tx.ReferralCodes().CreateReferralCode(ctx, *c)
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return err
		}

		code, genErr := cryptox.GenerateAlphanumericCode(referralCodeLength)
		if genErr != nil {
			return genErr
		}
		c.Code = code
	}
	return fmt.Errorf("%w after %d attempts", ErrReferralCodeConflict, maxCollisionRetries)
}
