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
	ErrLanguageExists = errors.New("language already exists")
	ErrCategoryExists = errors.New("category already exists")
)

// defaultLanguages and defaultCategories seed the catalog on first boot.
var defaultLanguages = []domain.Language{
	{Name: "English", FlagURL: "https://flagcdn.com/gb.svg"},
	{Name: "Español", FlagURL: "https://flagcdn.com/es.svg"},
	{Name: "Français", FlagURL: "https://flagcdn.com/fr.svg"},
	{Name: "Deutsch", FlagURL: "https://flagcdn.com/de.svg"},
	{Name: "Português", FlagURL: "https://flagcdn.com/pt.svg"},
}

var defaultCategories = []string{
	"Grammar",
	"Vocabulary",
	"Conversation",
	"Business",
	"Exam Preparation",
}

// CatalogService manages the languages and categories courses hang off.
type CatalogService struct {
	Store store.Store
}

// Seed inserts the default languages and categories, skipping anything that
// already exists. Safe to call on every boot.
func (s *CatalogService) Seed(ctx context.Context) error {
	log := slogx.FromContext(ctx)

	seeded := 0
	for _, l := range defaultLanguages {
		l.ID = idx.New().String()
		err := s.Store.Languages().CreateLanguage(ctx, l)
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				continue
			}
			return err
		}
		seeded++
	}
	for _, name := range defaultCategories {
		err := s.Store.Categories().CreateCategory(ctx, domain.Category{
			ID:   idx.New().String(),
			Name: name,
		})
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				continue
			}
			return err
		}
		seeded++
	}

	if seeded > 0 {
		log.Info("catalog seeded", slog.Int("entries", seeded))
	}
	return nil
}

func (s *CatalogService) CreateLanguage(ctx context.Context, name, flagURL string) (domain.Language, error) {
	l := domain.Language{
		ID:      idx.New().String(),
		Name:    name,
		FlagURL: flagURL,
	}
	if err := s.Store.Languages().CreateLanguage(ctx, l); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Language{}, ErrLanguageExists
		}
		return domain.Language{}, err
	}
	return l, nil
}

func (s *CatalogService) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	return s.Store.Languages().ListLanguages(ctx)
}

func (s *CatalogService) DeleteLanguage(ctx context.Context, id string) error {
	if _, err := s.Store.Languages().GetLanguageByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLanguageNotFound
		}
		return err
	}
	return s.Store.Languages().DeleteLanguage(ctx, id)
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	c := domain.Category{
		ID:   idx.New().String(),
		Name: name,
	}
	if err := s.Store.Categories().CreateCategory(ctx, c); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Category{}, ErrCategoryExists
		}
		return domain.Category{}, err
	}
	return c, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.Store.Categories().ListCategories(ctx)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.Store.Categories().DeleteCategory(ctx, id)
}
