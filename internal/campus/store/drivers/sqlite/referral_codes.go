package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/uniendoculturas/campus/internal/campus/domain"
)

type referralCodesRepo struct {
	db dbtx
}

const referralColumns = `id, code, issuer_id, discount, issued_at, expires_at,
	redeemed, redeemer_id, redeemed_at, created_at, updated_at`

func (r *referralCodesRepo) CreateReferralCode(ctx context.Context, c domain.ReferralCode) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO referral_codes (id, code, issuer_id, discount, issued_at, expires_at,
			redeemed, redeemer_id, redeemed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Code, c.IssuerID, c.Discount, c.IssuedAt.UTC(), c.ExpiresAt.UTC(),
		c.Redeemed, mapOptionalString(c.RedeemerID), mapOptionalTime(c.RedeemedAt),
		now, now,
	)
	return mapConstraint(err)
}

func (r *referralCodesRepo) GetReferralCodeByCode(ctx context.Context, code string) (domain.ReferralCode, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+referralColumns+` FROM referral_codes WHERE code = ?`, code)
	return scanReferralCode(row)
}

// MarkReferralCodeRedeemed is the compare-and-swap on the redeemed flag:
// only an unredeemed row matches, so concurrent redemptions of the same code
// collapse to exactly one success.
func (r *referralCodesRepo) MarkReferralCodeRedeemed(ctx context.Context, codeID, redeemerID string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE referral_codes
		SET redeemed = 1, redeemer_id = ?, redeemed_at = ?, updated_at = ?
		WHERE id = ? AND redeemed = 0`,
		redeemerID, at.UTC(), time.Now().UTC(), codeID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *referralCodesRepo) ListReferralCodes(ctx context.Context) ([]domain.ReferralCode, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+referralColumns+` FROM referral_codes ORDER BY issued_at DESC, code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []domain.ReferralCode
	for rows.Next() {
		c, err := scanReferralCode(rows)
		if err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

func scanReferralCode(row rowScanner) (domain.ReferralCode, error) {
	var (
		c          domain.ReferralCode
		redeemerID sql.NullString
		redeemedAt sql.NullTime
	)
	err := row.Scan(
		&c.ID, &c.Code, &c.IssuerID, &c.Discount, &c.IssuedAt, &c.ExpiresAt,
		&c.Redeemed, &redeemerID, &redeemedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.ReferralCode{}, mapNotFound(err)
	}
	c.RedeemerID = mapNullString(redeemerID)
	c.RedeemedAt = mapNullTime(redeemedAt)
	return c, nil
}
