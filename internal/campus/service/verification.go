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
	// DefaultVerificationTTL is how long an email verification code stays
	// consumable after issuance.
	DefaultVerificationTTL = 15 * time.Minute

	// verificationCodeLength is the character length of the hex code.
	verificationCodeLength = 8
)

var (
	ErrInvalidVerificationCode = errors.New("verification code not found")
	ErrVerificationCodeExpired = errors.New("verification code has expired")
	ErrAlreadyVerified         = errors.New("account is already verified")

	// ErrVerificationOrphan signals a verification code whose user no longer
	// exists. This is corrupted cross-entity state, not a user error, and is
	// surfaced as an internal failure.
	ErrVerificationOrphan = errors.New("verification code references a missing user")
)

// VerificationService issues and consumes single-use email verification
// codes, flipping a user's verified flag exactly once.
type VerificationService struct {
	Store    store.Store
	Notifier Notifier
	CodeTTL  time.Duration

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *VerificationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// IssueCode mints a fresh verification code for the given email and persists
// it. Several live codes per email may coexist; each stays consumable until
// used or expired. The notification is dispatched only after the code is
// stored, and a delivery failure never undoes the issuance.
func (s *VerificationService) IssueCode(ctx context.Context, email string) (domain.VerificationCode, error) {
	log := slogx.FromContext(ctx)

	// 1. Generate the random code.
	raw, err := cryptox.GenerateHexCode(verificationCodeLength)
	if err != nil {
		log.Error("failed to generate verification code", slog.Any("error", err))
		return domain.VerificationCode{}, err
	}

	ttl := s.CodeTTL
	if ttl <= 0 {
		ttl = DefaultVerificationTTL
	}

	code := domain.VerificationCode{
		ID:        idx.New().String(),
		Email:     email,
		Code:      raw,
		ExpiresAt: s.now().Add(ttl),
	}

	// 2. Persist before any delivery attempt.
	if err := s.Store.VerificationCodes().CreateVerificationCode(ctx, code); err != nil {
		log.Error("failed to store verification code", slog.Any("error", err))
		return domain.VerificationCode{}, err
	}

	// 3. Best-effort delivery.
	if s.Notifier != nil {
		n := Notification{
			To:      []string{email},
			Subject: "Verify your account",
			Body:    fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", raw, int(ttl.Minutes())),
		}
		if err := s.Notifier.Send(ctx, n); err != nil {
			log.Warn("verification email delivery failed",
				slog.String("email", email),
				slog.Any("error", err),
			)
		}
	}

	log.Debug("verification code issued",
		slog.String("email", email),
		slog.Time("expires_at", code.ExpiresAt),
	)

	return code, nil
}

// Consume validates a (email, code) pair and marks the account verified.
// The lookup, the verified-flag flip and the code deletion run in a single
// transaction, and the flip itself is a conditional update, so of N
// concurrent consumers of the same code exactly one succeeds.
func (s *VerificationService) Consume(ctx context.Context, email, code string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Exact (email, code) lookup.
		rec, err := tx.VerificationCodes().GetVerificationCode(ctx, email, code)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidVerificationCode
			}
			return err
		}

		// 2. Expired codes never validate, whether or not they still exist.
		if rec.Expired(s.now()) {
			return ErrVerificationCodeExpired
		}

		// 3. The user must exist; a code outliving its user is corrupted
		// cross-entity state.
		user, err := tx.Users().GetUserByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: code %s, email %s", ErrVerificationOrphan, rec.ID, email)
			}
			return err
		}

		if user.IsVerified {
			return ErrAlreadyVerified
		}

		// 4. Conditional flip; a concurrent transaction that got here first
		// leaves no row to match.
		flipped, err := tx.Users().MarkUserVerified(ctx, user.ID)
		if err != nil {
			return err
		}
		if !flipped {
			return ErrAlreadyVerified
		}

		// 5. Single use: the code row goes away with the same commit.
		deleted, err := tx.VerificationCodes().DeleteVerificationCode(ctx, rec.ID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrInvalidVerificationCode
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Info("account verified", slog.String("email", email))
	return nil
}
