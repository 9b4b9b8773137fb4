package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/uniendoculturas/campus/internal/campus/domain"
	"github.com/uniendoculturas/campus/internal/campus/service"
	"github.com/uniendoculturas/campus/pkg/campussdk"
	"github.com/uniendoculturas/campus/pkg/httpx"
	"github.com/uniendoculturas/campus/pkg/slogx"
)

type CoursesHandler struct {
	CourseService *service.CourseService
}

// HandleList godoc
//
//	@Summary		Course Listing Endpoint
//	@Description	List active courses, paginated. Defaults to the first page of five.
//	@Tags			Courses
//	@Produce		json
//	@Param			page	query		int						false	"page number, starting at 1"
//	@Param			limit	query		int						false	"page size, default 5"
//	@Success		200		{array}		campussdk.CourseResponse
//	@Failure		500		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Router			/v1/courses [get].
func (h *CoursesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	courses, err := h.CourseService.List(ctx, page, limit)
	if err != nil {
		log.Error("failed to list courses", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
			"Failed to list courses")
		return
	}

	out := make([]campussdk.CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, toCourseResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Course Detail Endpoint
//	@Description	Return a single course by id.
//	@Tags			Courses
//	@Produce		json
//	@Param			id	path		string	true	"course id"
//	@Success		200	{object}	campussdk.CourseResponse
//	@Failure		404	{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	campussdk.ErrorResponse	"error, error_description"
//	@Router			/v1/courses/{id} [get].
func (h *CoursesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	course, err := h.CourseService.GetByID(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			httpx.WriteError(w, http.StatusNotFound, campussdk.ErrorCodeNotFound, "Course not found")
			return
		}
		log.Error("failed to load course", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
			"Failed to load course")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCourseResponse(course))
}

// HandleCreate godoc
//
//	@Summary		Course Creation Endpoint
//	@Description	Add a course to the catalog. Titles are unique and the language and category must already exist. This is an admin-only operation.
//	@Tags			Courses
//	@Accept			json
//	@Produce		json
//	@Param			request	body		campussdk.CreateCourseRequest	true	"Course definition"
//	@Success		201		{object}	campussdk.CourseResponse
//	@Failure		400		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/courses [post].
func (h *CoursesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req campussdk.CreateCourseRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}
	if req.Title == "" || req.Language == "" || req.Category == "" {
		httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest,
			"title, language and category are required")
		return
	}

	course, err := h.CourseService.Create(ctx, service.NewCourse{
		Title:       req.Title,
		Description: req.Description,
		Language:    req.Language,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourseExists):
			httpx.WriteError(w, http.StatusConflict, campussdk.ErrorCodeConflict,
				"A course with this title already exists")
		case errors.Is(err, service.ErrLanguageNotFound):
			httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest,
				"Unknown language")
		case errors.Is(err, service.ErrCategoryNotFound):
			httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest,
				"Unknown category")
		default:
			log.Error("failed to create course", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
				"Failed to create course")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toCourseResponse(course))
}

// HandleDelete godoc
//
//	@Summary		Course Removal Endpoint
//	@Description	Soft-delete a course; it disappears from listings but keeps its ratings. This is an admin-only operation.
//	@Tags			Courses
//	@Produce		json
//	@Param			id	path	string	true	"course id"
//	@Success		204	"course deactivated"
//	@Failure		401	{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	campussdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/courses/{id} [delete].
func (h *CoursesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.CourseService.Deactivate(ctx, r.PathValue("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			httpx.WriteError(w, http.StatusNotFound, campussdk.ErrorCodeNotFound, "Course not found")
		case errors.Is(err, service.ErrCourseInactive):
			httpx.WriteError(w, http.StatusConflict, campussdk.ErrorCodeConflict,
				"Course is already inactive")
		default:
			log.Error("failed to deactivate course", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
				"Failed to deactivate course")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCourseResponse(c domain.Course) campussdk.CourseResponse {
	return campussdk.CourseResponse{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		LanguageID:    c.LanguageID,
		CategoryID:    c.CategoryID,
		ImageURL:      c.ImageURL,
		VideoURL:      c.VideoURL,
		RatingCount:   c.RatingCount,
		AverageRating: c.AverageRating(),
	}
}
