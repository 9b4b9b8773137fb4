package domain

import "time"

// Language a course is taught in.
type Language struct {
	ID        string
	Name      string
	FlagURL   string
	CreatedAt time.Time
}

// Category a course belongs to.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
