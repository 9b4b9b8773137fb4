package http

import (
	"errors"
	"net/http"

	"github.com/uniendoculturas/campus/internal/campus/service"
	"github.com/uniendoculturas/campus/pkg/campussdk"
	"github.com/uniendoculturas/campus/pkg/httpx"
	"github.com/uniendoculturas/campus/pkg/slogx"
)

type CatalogHandler struct {
	CatalogService *service.CatalogService
}

// HandleListLanguages godoc
//
//	@Summary		Language Listing Endpoint
//	@Description	List all catalog languages.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}		campussdk.LanguageResponse
//	@Failure		500	{object}	campussdk.ErrorResponse	"error, error_description"
//	@Router			/v1/languages [get].
func (h *CatalogHandler) HandleListLanguages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	languages, err := h.CatalogService.ListLanguages(ctx)
	if err != nil {
		log.Error("failed to list languages", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
			"Failed to list languages")
		return
	}

	out := make([]campussdk.LanguageResponse, 0, len(languages))
	for _, l := range languages {
		out = append(out, campussdk.LanguageResponse{ID: l.ID, Name: l.Name, FlagURL: l.FlagURL})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreateLanguage godoc
//
//	@Summary		Language Creation Endpoint
//	@Description	Add a language to the catalog. This is an admin-only operation.
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		campussdk.CreateLanguageRequest	true	"Language definition"
//	@Success		201		{object}	campussdk.LanguageResponse
//	@Failure		400		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/languages [post].
func (h *CatalogHandler) HandleCreateLanguage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req campussdk.CreateLanguageRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}
	if req.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest, "name is required")
		return
	}

	lang, err := h.CatalogService.CreateLanguage(ctx, req.Name, req.FlagURL)
	if err != nil {
		if errors.Is(err, service.ErrLanguageExists) {
			httpx.WriteError(w, http.StatusConflict, campussdk.ErrorCodeConflict,
				"A language with this name already exists")
			return
		}
		log.Error("failed to create language", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
			"Failed to create language")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, campussdk.LanguageResponse{
		ID: lang.ID, Name: lang.Name, FlagURL: lang.FlagURL,
	})
}

// HandleDeleteLanguage godoc
//
//	@Summary		Language Removal Endpoint
//	@Description	Remove a language from the catalog. Fails while courses still reference it. This is an admin-only operation.
//	@Tags			Catalog
//	@Param			id	path	string	true	"language id"
//	@Success		204	"language removed"
//	@Failure		404	{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	campussdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/languages/{id} [delete].
func (h *CatalogHandler) HandleDeleteLanguage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.CatalogService.DeleteLanguage(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrLanguageNotFound) {
			httpx.WriteError(w, http.StatusNotFound, campussdk.ErrorCodeNotFound, "Language not found")
			return
		}
		log.Error("failed to delete language", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
			"Failed to delete language")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListCategories godoc
//
//	@Summary		Category Listing Endpoint
//	@Description	List all catalog categories.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}		campussdk.CategoryResponse
//	@Failure		500	{object}	campussdk.ErrorResponse	"error, error_description"
//	@Router			/v1/categories [get].
func (h *CatalogHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	categories, err := h.CatalogService.ListCategories(ctx)
	if err != nil {
		log.Error("failed to list categories", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
			"Failed to list categories")
		return
	}

	out := make([]campussdk.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, campussdk.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreateCategory godoc
//
//	@Summary		Category Creation Endpoint
//	@Description	Add a category to the catalog. This is an admin-only operation.
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		campussdk.CreateCategoryRequest	true	"Category definition"
//	@Success		201		{object}	campussdk.CategoryResponse
//	@Failure		400		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	campussdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/categories [post].
func (h *CatalogHandler) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req campussdk.CreateCategoryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}
	if req.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, campussdk.ErrorCodeInvalidRequest, "name is required")
		return
	}

	cat, err := h.CatalogService.CreateCategory(ctx, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrCategoryExists) {
			httpx.WriteError(w, http.StatusConflict, campussdk.ErrorCodeConflict,
				"A category with this name already exists")
			return
		}
		log.Error("failed to create category", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
			"Failed to create category")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, campussdk.CategoryResponse{ID: cat.ID, Name: cat.Name})
}

// HandleDeleteCategory godoc
//
//	@Summary		Category Removal Endpoint
//	@Description	Remove a category from the catalog. This is an admin-only operation.
//	@Tags			Catalog
//	@Param			id	path	string	true	"category id"
//	@Success		204	"category removed"
//	@Failure		500	{object}	campussdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/categories/{id} [delete].
func (h *CatalogHandler) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.CatalogService.DeleteCategory(ctx, r.PathValue("id")); err != nil {
		log.Error("failed to delete category", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, campussdk.ErrorCodeServerError,
			"Failed to delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
