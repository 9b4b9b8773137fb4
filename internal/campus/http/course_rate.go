package http

import (
	"errors"
	"net/http"

	"github.com/uniendoculturas/campus/internal/campus/service"
	"github.com/uniendoculturas/campus/pkg/campussdk"
	"github.com/uniendoculturas/campus/pkg/httpx"
	"github.com/uniendoculturas/campus/pkg/slogx"
)

type CourseRateHandler struct {
	CourseService *service.CourseService
}

// ServeHTTP godoc
//
//	@Summary		Course Rating Endpoint
//	@Description	Submit the caller's one-and-only rating for a course, 1 to 5 stars. A second rating from the same user is rejected, never overwritten.
//	@Tags			Courses
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"course id"
//	@Param			request	body		campussdk.RateCourseRequest	true	"stars, 1..5"
//	@Success		200		{object}	campussdk.CourseResponse	"the course with the updated aggregate"
//	@Failure		400		{object}	campussdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	campussdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	campussdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	campussdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	campussdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/courses/{id}/rate [post].
func (h *CourseRateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req campussdk.RateCourseRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, campussdk.ErrorCodeUnauthorized,
			"Authentication required")
		return
	}

	course, err := h.CourseService.Rate(ctx, r.PathValue("id"), userID, req.Stars)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStars):
			httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest,
				"stars must be between 1 and 5")
		case errors.Is(err, service.ErrCourseNotFound):
			httpx.WriteError(w, http.StatusNotFound, campussdk.ErrorCodeNotFound, "Course not found")
		case errors.Is(err, service.ErrAlreadyRated):
			httpx.WriteError(w, http.StatusConflict, campussdk.ErrorCodeConflict,
				"You have already rated this course")
		default:
			log.Error("failed to rate course", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
				"Failed to rate course")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCourseResponse(course))
}
