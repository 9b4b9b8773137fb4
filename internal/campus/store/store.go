package store

import (
	"context"
	"errors"
	"time"

	"github.com/uniendoculturas/campus/internal/campus/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	VerificationCodes() VerificationCodes
	ReferralCodes() ReferralCodes
	Courses() Courses
	Languages() Languages
	Categories() Categories

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run the check-then-mutate sequences in the service
	// layer: all repos obtained from the Tx see and mutate the same snapshot.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email or id number is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail returns a user by email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// MarkUserVerified flips is_verified false->true. Returns false when the
	// user was already verified (the conditional update matched no row), so
	// concurrent verifications collapse to a single success.
	MarkUserVerified(ctx context.Context, userID string) (bool, error)

	// SetRedeemedReferralCode sets the user's referral back-reference only if
	// it is still unset. Returns false when the user already redeemed a code.
	SetRedeemedReferralCode(ctx context.Context, userID, codeID string) (bool, error)

	// DeactivateUser soft-deletes a user account.
	DeactivateUser(ctx context.Context, userID string) error

	// PromoteUserToAdmin grants the admin role to the account with the given
	// email. Used for boot-time bootstrap of the first administrator.
	PromoteUserToAdmin(ctx context.Context, email string) error

	// ListNewsletterRecipients returns the emails of users subscribed to the
	// newsletter.
	ListNewsletterRecipients(ctx context.Context) ([]string, error)
}

type VerificationCodes interface {
	// CreateVerificationCode writes a new code row. Multiple live codes per
	// email are allowed.
	CreateVerificationCode(ctx context.Context, v domain.VerificationCode) error

	// GetVerificationCode returns the code row matching (email, code) exactly.
	GetVerificationCode(ctx context.Context, email, code string) (domain.VerificationCode, error)

	// DeleteVerificationCode removes a consumed code. Returns false when the
	// row was already gone (lost a consumption race).
	DeleteVerificationCode(ctx context.Context, id string) (bool, error)

	// DeleteExpiredVerificationCodes is housekeeping.
	DeleteExpiredVerificationCodes(ctx context.Context, now time.Time) (int64, error)
}

type ReferralCodes interface {
	// CreateReferralCode inserts one code. Returns ErrAlreadyExists when the
	// generated code string collides with an existing one.
	CreateReferralCode(ctx context.Context, c domain.ReferralCode) error

	// GetReferralCodeByCode returns a code row by its code string.
	GetReferralCodeByCode(ctx context.Context, code string) (domain.ReferralCode, error)

	// MarkReferralCodeRedeemed transitions a code to its terminal redeemed
	// state. Returns false when the code was already redeemed (the
	// conditional update matched no row).
	MarkReferralCodeRedeemed(ctx context.Context, codeID, redeemerID string, at time.Time) (bool, error)

	// ListReferralCodes returns all codes, newest batch first.
	ListReferralCodes(ctx context.Context) ([]domain.ReferralCode, error)
}

type Courses interface {
	CreateCourse(ctx context.Context, c domain.Course) error
	GetCourseByID(ctx context.Context, id string) (domain.Course, error)
	GetCourseByTitle(ctx context.Context, title string) (domain.Course, error)
	ListCourses(ctx context.Context, page, limit int) ([]domain.Course, error)
	DeactivateCourse(ctx context.Context, id string) error

	// HasRating reports whether the user already rated the course.
	HasRating(ctx context.Context, courseID, userID string) (bool, error)

	// InsertRating adds a rating row. The (course_id, user_id) primary key is
	// the storage-level backstop: a duplicate maps to ErrAlreadyExists.
	InsertRating(ctx context.Context, r domain.CourseRating) error

	// ApplyRating folds a new rating into the course aggregate.
	ApplyRating(ctx context.Context, courseID string, stars int) error
}

type Languages interface {
	CreateLanguage(ctx context.Context, l domain.Language) error
	GetLanguageByID(ctx context.Context, id string) (domain.Language, error)
	GetLanguageByName(ctx context.Context, name string) (domain.Language, error)
	ListLanguages(ctx context.Context) ([]domain.Language, error)
	DeleteLanguage(ctx context.Context, id string) error
}

type Categories interface {
	CreateCategory(ctx context.Context, c domain.Category) error
	GetCategoryByName(ctx context.Context, name string) (domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}
