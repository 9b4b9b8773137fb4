package sqlite

import (
	"context"
	"time"

	"github.com/uniendoculturas/campus/internal/campus/domain"
)

type verificationCodesRepo struct {
	db dbtx
}

func (r *verificationCodesRepo) CreateVerificationCode(ctx context.Context, v domain.VerificationCode) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO verification_codes (id, email, code, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		v.ID, v.Email, v.Code, v.ExpiresAt.UTC(), time.Now().UTC(),
	)
	return mapConstraint(err)
}

func (r *verificationCodesRepo) GetVerificationCode(ctx context.Context, email, code string) (domain.VerificationCode, error) {
	var v domain.VerificationCode
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, code, expires_at, created_at
		FROM verification_codes WHERE email = ? AND code = ?`,
		email, code,
	).Scan(&v.ID, &v.Email, &v.Code, &v.ExpiresAt, &v.CreatedAt)
	if err != nil {
		return domain.VerificationCode{}, mapNotFound(err)
	}
	return v, nil
}

// DeleteVerificationCode reports whether a row was actually removed, so a
// consumer that lost the race to another transaction can tell.
func (r *verificationCodesRepo) DeleteVerificationCode(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM verification_codes WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *verificationCodesRepo) DeleteExpiredVerificationCodes(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM verification_codes WHERE expires_at < ?`, now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
