package domain

import "time"

type Course struct {
	ID          string
	Title       string
	Description string
	LanguageID  string
	CategoryID  string
	ImageURL    string
	VideoURL    string
	IsActive    bool

	// Rating aggregate. RatingSum/RatingCount is the average; both are only
	// ever mutated together with an insert into the per-user rating set.
	RatingCount int
	RatingSum   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AverageRating returns the mean of all submitted ratings, or 0 when the
// course has none.
func (c Course) AverageRating() float64 {
	if c.RatingCount == 0 {
		return 0
	}
	return float64(c.RatingSum) / float64(c.RatingCount)
}

// CourseRating records that a user rated a course. At most one row exists per
// (course, user) pair.
type CourseRating struct {
	CourseID  string
	UserID    string
	Stars     int // 1..5
	CreatedAt time.Time
}
