package domain

import "time"

// VerificationCode is a single-use email verification token. It is deleted on
// successful consumption; an expired code is rejected at lookup time and
// eventually swept by housekeeping. Several live codes may exist for the same
// email at once, each consumable until it is used or expires.
type VerificationCode struct {
	ID        string
	Email     string
	Code      string // short hex code delivered by email
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the code is no longer consumable at the given time.
func (v VerificationCode) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}
