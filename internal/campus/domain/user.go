package domain

import "time"

// Roles a user can hold. Referral batch issuance is gated on RoleAdmin.
const (
	RoleUser    = "user"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

type User struct {
	ID           string
	Name         string
	Email        string
	IDNumber     string // national identification number, unique
	PasswordHash string // argon2id encoded
	Role         string
	PhotoURL     string
	Newsletter   bool
	IsVerified   bool
	IsActive     bool

	// RedeemedReferralCodeID is set exactly once, when the user redeems a
	// referral code. A user can never hold more than one.
	RedeemedReferralCodeID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
