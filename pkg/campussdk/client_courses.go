package campussdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListCourses returns a page of active courses. Public endpoint.
func (c *SDKClient) ListCourses(ctx context.Context, page, limit int) ([]CourseResponse, error) {
	path := fmt.Sprintf("/v1/courses?page=%d&limit=%d", page, limit)
	resp, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var courses []CourseResponse
	if err := decodeJSON(resp, &courses, http.StatusOK); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourse returns a single course by id. Public endpoint.
func (c *SDKClient) GetCourse(ctx context.Context, id string) (*CourseResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/courses/"+id, nil)
	if err != nil {
		return nil, err
	}

	var course CourseResponse
	if err := decodeJSON(resp, &course, http.StatusOK); err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse adds a course to the catalog. Admin only.
func (s *Session) CreateCourse(ctx context.Context, req CreateCourseRequest) (*CourseResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/courses", req)
	if err != nil {
		return nil, err
	}

	var course CourseResponse
	if err := decodeJSON(resp, &course, http.StatusCreated); err != nil {
		return nil, err
	}
	return &course, nil
}

// RateCourse submits the caller's one-and-only rating for the course and
// returns the course with the updated aggregate.
func (s *Session) RateCourse(ctx context.Context, courseID string, stars int) (*CourseResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/courses/"+courseID+"/rate", RateCourseRequest{
		Stars: stars,
	})
	if err != nil {
		return nil, err
	}

	var course CourseResponse
	if err := decodeJSON(resp, &course, http.StatusOK); err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse soft-deletes a course. Admin only.
func (s *Session) DeleteCourse(ctx context.Context, id string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodDelete, "/v1/courses/"+id, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
