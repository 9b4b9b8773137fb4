package sqlite

import (
	"context"
	"time"

	"github.com/uniendoculturas/campus/internal/campus/domain"
)

type coursesRepo struct {
	db dbtx
}

const courseColumns = `id, title, description, language_id, category_id, image_url,
	video_url, is_active, rating_count, rating_sum, created_at, updated_at`

func (r *coursesRepo) CreateCourse(ctx context.Context, c domain.Course) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO courses (id, title, description, language_id, category_id, image_url,
			video_url, is_active, rating_count, rating_sum, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Title, c.Description, c.LanguageID, c.CategoryID, c.ImageURL,
		c.VideoURL, c.IsActive, c.RatingCount, c.RatingSum, now, now,
	)
	return mapConstraint(err)
}

func (r *coursesRepo) GetCourseByID(ctx context.Context, id string) (domain.Course, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = ?`, id)
	return scanCourse(row)
}

func (r *coursesRepo) GetCourseByTitle(ctx context.Context, title string) (domain.Course, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE title = ?`, title)
	return scanCourse(row)
}

func (r *coursesRepo) ListCourses(ctx context.Context, page, limit int) ([]domain.Course, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 5
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+courseColumns+` FROM courses
		WHERE is_active = 1
		ORDER BY created_at DESC, title
		LIMIT ? OFFSET ?`,
		limit, (page-1)*limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *coursesRepo) DeactivateCourse(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE courses SET is_active = 0, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), id)
	return err
}

func (r *coursesRepo) HasRating(ctx context.Context, courseID, userID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM course_ratings WHERE course_id = ? AND user_id = ?`,
		courseID, userID,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *coursesRepo) InsertRating(ctx context.Context, rating domain.CourseRating) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO course_ratings (course_id, user_id, stars, created_at)
		VALUES (?, ?, ?, ?)`,
		rating.CourseID, rating.UserID, rating.Stars, time.Now().UTC(),
	)
	return mapConstraint(err)
}

func (r *coursesRepo) ApplyRating(ctx context.Context, courseID string, stars int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE courses
		SET rating_count = rating_count + 1, rating_sum = rating_sum + ?, updated_at = ?
		WHERE id = ?`,
		stars, time.Now().UTC(), courseID,
	)
	return err
}

func scanCourse(row rowScanner) (domain.Course, error) {
	var c domain.Course
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.LanguageID, &c.CategoryID, &c.ImageURL,
		&c.VideoURL, &c.IsActive, &c.RatingCount, &c.RatingSum, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Course{}, mapNotFound(err)
	}
	return c, nil
}
