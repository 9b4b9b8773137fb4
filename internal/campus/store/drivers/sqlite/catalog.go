package sqlite

import (
	"context"
	"time"

	"github.com/uniendoculturas/campus/internal/campus/domain"
)

type languagesRepo struct {
	db dbtx
}

func (r *languagesRepo) CreateLanguage(ctx context.Context, l domain.Language) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO languages (id, name, flag_url, created_at) VALUES (?, ?, ?, ?)`,
		l.ID, l.Name, l.FlagURL, time.Now().UTC(),
	)
	return mapConstraint(err)
}

func (r *languagesRepo) GetLanguageByID(ctx context.Context, id string) (domain.Language, error) {
	var l domain.Language
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, flag_url, created_at FROM languages WHERE id = ?`, id,
	).Scan(&l.ID, &l.Name, &l.FlagURL, &l.CreatedAt)
	if err != nil {
		return domain.Language{}, mapNotFound(err)
	}
	return l, nil
}

func (r *languagesRepo) GetLanguageByName(ctx context.Context, name string) (domain.Language, error) {
	var l domain.Language
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, flag_url, created_at FROM languages WHERE name = ?`, name,
	).Scan(&l.ID, &l.Name, &l.FlagURL, &l.CreatedAt)
	if err != nil {
		return domain.Language{}, mapNotFound(err)
	}
	return l, nil
}

func (r *languagesRepo) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, flag_url, created_at FROM languages ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var languages []domain.Language
	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(&l.ID, &l.Name, &l.FlagURL, &l.CreatedAt); err != nil {
			return nil, err
		}
		languages = append(languages, l)
	}
	return languages, rows.Err()
}

func (r *languagesRepo) DeleteLanguage(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM languages WHERE id = ?`, id)
	return err
}

type categoriesRepo struct {
	db dbtx
}

func (r *categoriesRepo) CreateCategory(ctx context.Context, c domain.Category) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, created_at) VALUES (?, ?, ?)`,
		c.ID, c.Name, time.Now().UTC(),
	)
	return mapConstraint(err)
}

func (r *categoriesRepo) GetCategoryByName(ctx context.Context, name string) (domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM categories WHERE name = ?`, name,
	).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		return domain.Category{}, mapNotFound(err)
	}
	return c, nil
}

func (r *categoriesRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoriesRepo) DeleteCategory(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	return err
}
