package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/uniendoculturas/campus/internal/campus/domain"
	"github.com/uniendoculturas/campus/internal/campus/store"
	"github.com/uniendoculturas/campus/pkg/idx"
	"github.com/uniendoculturas/campus/pkg/slogx"
)

var (
	ErrInvalidStars     = errors.New("stars must be between 1 and 5")
	ErrCourseNotFound   = errors.New("course not found")
	ErrAlreadyRated     = errors.New("user has already rated this course")
	ErrCourseExists     = errors.New("a course with this title already exists")
	ErrCourseInactive   = errors.New("course is already inactive")
	ErrLanguageNotFound = errors.New("language not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// CourseService owns course CRUD and the single-rating-per-user guard.
type CourseService struct {
	Store store.Store
}

// NewCourse is the caller-supplied shape for course creation.
type NewCourse struct {
	Title       string
	Description string
	Language    string // language name, must exist in the catalog
	Category    string // category name, must exist in the catalog
	ImageURL    string
	VideoURL    string
}

// Create adds a course. Titles are unique; the language must already exist.
func (s *CourseService) Create(ctx context.Context, in NewCourse) (domain.Course, error) {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Courses().GetCourseByTitle(ctx, in.Title); err == nil {
		return domain.Course{}, ErrCourseExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Course{}, err
	}

	lang, err := s.Store.Languages().GetLanguageByName(ctx, in.Language)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Course{}, ErrLanguageNotFound
		}
		return domain.Course{}, err
	}

	cat, err := s.Store.Categories().GetCategoryByName(ctx, in.Category)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Course{}, ErrCategoryNotFound
		}
		return domain.Course{}, err
	}

	course := domain.Course{
		ID:          idx.New().String(),
		Title:       in.Title,
		Description: in.Description,
		LanguageID:  lang.ID,
		CategoryID:  cat.ID,
		ImageURL:    in.ImageURL,
		VideoURL:    in.VideoURL,
		IsActive:    true,
	}

	if err := s.Store.Courses().CreateCourse(ctx, course); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Course{}, ErrCourseExists
		}
		log.Error("failed to create course", slog.Any("error", err))
		return domain.Course{}, err
	}

	log.Info("course created",
		slog.String("course_id", course.ID),
		slog.String("title", course.Title),
	)
	return course, nil
}

// GetByID fetches a single course.
func (s *CourseService) GetByID(ctx context.Context, id string) (domain.Course, error) {
	course, err := s.Store.Courses().GetCourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Course{}, ErrCourseNotFound
		}
		return domain.Course{}, err
	}
	return course, nil
}

// List returns a page of active courses.
func (s *CourseService) List(ctx context.Context, page, limit int) ([]domain.Course, error) {
	return s.Store.Courses().ListCourses(ctx, page, limit)
}

// Deactivate soft-deletes a course. Deactivating twice is rejected.
func (s *CourseService) Deactivate(ctx context.Context, id string) error {
	course, err := s.Store.Courses().GetCourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCourseNotFound
		}
		return err
	}
	if !course.IsActive {
		return ErrCourseInactive
	}
	return s.Store.Courses().DeactivateCourse(ctx, id)
}

// Rate records a user's one-and-only rating for a course and folds it into
// the aggregate. Star validation happens before any lookup, so an invalid
// value is rejected even for a nonexistent course. The duplicate check and
// the rating insert run in one transaction, with the composite primary key
// as the storage-level backstop against a concurrent first rating.
func (s *CourseService) Rate(ctx context.Context, courseID, userID string, stars int) (domain.Course, error) {
	log := slogx.FromContext(ctx)

	// 1. Validation precedes every lookup.
	if stars < 1 || stars > 5 {
		return domain.Course{}, ErrInvalidStars
	}

	var rated domain.Course
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 2. Course must exist.
		course, err := tx.Courses().GetCourseByID(ctx, courseID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCourseNotFound
			}
			return err
		}

		// 3. One rating per user. Rejected, never overwritten.
		already, err := tx.Courses().HasRating(ctx, courseID, userID)
		if err != nil {
			return err
		}
		if already {
			return ErrAlreadyRated
		}

		// 4. Insert plus aggregate bump commit together. The primary key
		// catches a concurrent insert that slipped past the check above.
		err = tx.Courses().InsertRating(ctx, domain.CourseRating{
			CourseID: courseID,
			UserID:   userID,
			Stars:    stars,
		})
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyRated
			}
			return err
		}

		if err := tx.Courses().ApplyRating(ctx, courseID, stars); err != nil {
			return err
		}

		course.RatingCount++
		course.RatingSum += stars
		rated = course
		return nil
	})
	if err != nil {
		return domain.Course{}, err
	}

	log.Debug("course rated",
		slog.String("course_id", courseID),
		slog.String("user_id", userID),
		slog.Int("stars", stars),
	)
	return rated, nil
}
