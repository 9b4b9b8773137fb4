package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/uniendoculturas/campus/internal/campus/domain"
	"github.com/uniendoculturas/campus/internal/campus/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, name, email, id_number, password_hash, role, photo_url,
	newsletter, is_verified, is_active, redeemed_referral_code_id, created_at, updated_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, id_number, password_hash, role, photo_url,
			newsletter, is_verified, is_active, redeemed_referral_code_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.IDNumber, u.PasswordHash, u.Role, u.PhotoURL,
		u.Newsletter, u.IsVerified, u.IsActive, mapOptionalString(u.RedeemedReferralCodeID),
		now, now,
	)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// MarkUserVerified is a conditional update: the WHERE clause only matches an
// unverified user, so of N concurrent callers exactly one observes a row
// change.
func (r *usersRepo) MarkUserVerified(ctx context.Context, userID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET is_verified = 1, updated_at = ?
		WHERE id = ? AND is_verified = 0`,
		time.Now().UTC(), userID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// SetRedeemedReferralCode only matches a user whose back-reference is still
// NULL; the UNIQUE column is the storage-level backstop.
func (r *usersRepo) SetRedeemedReferralCode(ctx context.Context, userID, codeID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET redeemed_referral_code_id = ?, updated_at = ?
		WHERE id = ? AND redeemed_referral_code_id IS NULL`,
		codeID, time.Now().UTC(), userID,
	)
	if err != nil {
		return false, mapConstraint(err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *usersRepo) DeactivateUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET is_active = 0, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), userID,
	)
	return err
}

func (r *usersRepo) PromoteUserToAdmin(ctx context.Context, email string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET role = ?, updated_at = ? WHERE email = ?`,
		domain.RoleAdmin, time.Now().UTC(), email,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) ListNewsletterRecipients(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT email FROM users WHERE newsletter = 1 ORDER BY email`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u        domain.User
		redeemed sql.NullString
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.IDNumber, &u.PasswordHash, &u.Role, &u.PhotoURL,
		&u.Newsletter, &u.IsVerified, &u.IsActive, &redeemed, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.RedeemedReferralCodeID = mapNullString(redeemed)
	return u, nil
}
