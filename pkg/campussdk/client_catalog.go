package campussdk

import (
	"context"
	"net/http"
)

// ListLanguages returns the language catalog. Public endpoint.
func (c *SDKClient) ListLanguages(ctx context.Context) ([]LanguageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/languages", nil)
	if err != nil {
		return nil, err
	}

	var languages []LanguageResponse
	if err := decodeJSON(resp, &languages, http.StatusOK); err != nil {
		return nil, err
	}
	return languages, nil
}

// ListCategories returns the category catalog. Public endpoint.
func (c *SDKClient) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/categories", nil)
	if err != nil {
		return nil, err
	}

	var categories []CategoryResponse
	if err := decodeJSON(resp, &categories, http.StatusOK); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateLanguage adds a language to the catalog. Admin only.
func (s *Session) CreateLanguage(ctx context.Context, req CreateLanguageRequest) (*LanguageResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/languages", req)
	if err != nil {
		return nil, err
	}

	var lang LanguageResponse
	if err := decodeJSON(resp, &lang, http.StatusCreated); err != nil {
		return nil, err
	}
	return &lang, nil
}

// CreateCategory adds a category to the catalog. Admin only.
func (s *Session) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/categories", req)
	if err != nil {
		return nil, err
	}

	var cat CategoryResponse
	if err := decodeJSON(resp, &cat, http.StatusCreated); err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteLanguage removes a language from the catalog. Admin only.
func (s *Session) DeleteLanguage(ctx context.Context, id string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodDelete, "/v1/languages/"+id, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// DeleteCategory removes a category from the catalog. Admin only.
func (s *Session) DeleteCategory(ctx context.Context, id string) error {
	resp, err := s.doAuthJSON(ctx, http.MethodDelete, "/v1/categories/"+id, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
