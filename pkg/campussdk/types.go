package campussdk

import "time"

// ErrorResponse is the standard error payload returned by every endpoint.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g. "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// SignUpRequest registers a new student account.
type SignUpRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	IDNumber   string `json:"id_number"`
	Password   string `json:"password"`
	PhotoURL   string `json:"photo_url,omitempty"`
	Newsletter bool   `json:"newsletter"`
}

// UserResponse is the public shape of an account.
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	PhotoURL   string `json:"photo_url,omitempty"`
	Newsletter bool   `json:"newsletter"`
	IsVerified bool   `json:"is_verified"`
}

// SignInRequest exchanges credentials for an access token.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the JWT handed out on sign in.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// VerifyEmailRequest consumes a verification code.
type VerifyEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ResendVerificationRequest asks for a fresh verification code.
type ResendVerificationRequest struct {
	Email string `json:"email"`
}

// MintReferralsRequest asks for a batch of referral codes. Admin only.
type MintReferralsRequest struct {
	Quantity       int `json:"quantity"`
	Discount       int `json:"discount"`
	ExpirationDays int `json:"expiration_days"`
}

// ReferralCodeResponse is one issued code.
type ReferralCodeResponse struct {
	ID         string     `json:"id"`
	Code       string     `json:"code"`
	Discount   int        `json:"discount"`
	IssuedAt   time.Time  `json:"issued_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	Redeemed   bool       `json:"redeemed"`
	RedeemerID *string    `json:"redeemer_id,omitempty"`
	RedeemedAt *time.Time `json:"redeemed_at,omitempty"`
}

// MintReferralsResponse carries the whole issued batch.
type MintReferralsResponse struct {
	Codes []ReferralCodeResponse `json:"codes"`
}

// RedeemReferralRequest consumes a referral code for the signed-in user.
type RedeemReferralRequest struct {
	Code string `json:"code"`
}

// RedeemReferralResponse reports the discount the redemption unlocked.
type RedeemReferralResponse struct {
	Code     string `json:"code"`
	Discount int    `json:"discount"`
}

// CreateCourseRequest adds a course to the catalog. Admin only.
type CreateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
}

// CourseResponse is the public shape of a course.
type CourseResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	LanguageID    string  `json:"language_id"`
	CategoryID    string  `json:"category_id"`
	ImageURL      string  `json:"image_url,omitempty"`
	VideoURL      string  `json:"video_url,omitempty"`
	RatingCount   int     `json:"rating_count"`
	AverageRating float64 `json:"average_rating"`
}

// RateCourseRequest submits the caller's one-and-only rating for a course.
type RateCourseRequest struct {
	Stars int `json:"stars"`
}

// CreateLanguageRequest adds a language to the catalog. Admin only.
type CreateLanguageRequest struct {
	Name    string `json:"name"`
	FlagURL string `json:"flag_url,omitempty"`
}

// LanguageResponse is the public shape of a catalog language.
type LanguageResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	FlagURL string `json:"flag_url,omitempty"`
}

// CreateCategoryRequest adds a category to the catalog. Admin only.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse is the public shape of a catalog category.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HealthResponse is returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}
