package domain

import "time"

// ReferralCode is a discount code issued in batches by an admin. A code is
// redeemable while it is unredeemed and not past its expiry; once redeemed it
// is terminal and Redeemer/RedeemedAt never change.
type ReferralCode struct {
	ID         string
	Code       string // short alphanumeric code, globally unique
	IssuerID   string
	Discount   int // percentage, 1..100
	IssuedAt   time.Time
	ExpiresAt  time.Time
	Redeemed   bool
	RedeemerID *string
	RedeemedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Expired reports whether the code is past its expiry at the given time.
// A redemption at the exact expiry instant is still valid.
func (c ReferralCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
