package repository

import (
	"context"
	"time"

	"talent-triage/internal/database"

	"github.com/google/uuid"
)

type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

type SubCategory struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Name       string
	Keywords   []string
	CreatedAt  time.Time
}

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListSubCategories(ctx context.Context) ([]SubCategory, error)
	CreateCategory(ctx context.Context, name string) (Category, error)
	CreateSubCategory(ctx context.Context, categoryID uuid.UUID, name string, keywords []string) (SubCategory, error)

	// Find-or-create variants are idempotent under the unique indexes and
	// accept a Querier so the approval coordinator can run them inside its
	// transaction.
	FindOrCreateCategory(ctx context.Context, q database.Querier, name string) (Category, error)
	FindOrCreateSubCategory(ctx context.Context, q database.Querier, categoryID uuid.UUID, name string) (SubCategory, error)
}

type PostgresCategoryRepository struct {
	db database.DB
}

func NewPostgresCategoryRepository(db database.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, created_at FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCategoryRepository) ListSubCategories(ctx context.Context) ([]SubCategory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, category_id, name, COALESCE(keywords, '{}'), created_at
		 FROM sub_categories
		 ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SubCategory, 0)
	for rows.Next() {
		var s SubCategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Keywords, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCategoryRepository) CreateCategory(ctx context.Context, name string) (Category, error) {
	var c Category
	row := r.db.QueryRow(ctx,
		`INSERT INTO categories (id, name) VALUES ($1, $2) RETURNING id, name, created_at`,
		uuid.New(), name)
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		return Category{}, err
	}
	return c, nil
}

func (r *PostgresCategoryRepository) CreateSubCategory(ctx context.Context, categoryID uuid.UUID, name string, keywords []string) (SubCategory, error) {
	if keywords == nil {
		keywords = []string{}
	}
	var s SubCategory
	row := r.db.QueryRow(ctx,
		`INSERT INTO sub_categories (id, category_id, name, keywords)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, category_id, name, COALESCE(keywords, '{}'), created_at`,
		uuid.New(), categoryID, name, keywords)
	if err := row.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Keywords, &s.CreatedAt); err != nil {
		return SubCategory{}, err
	}
	return s, nil
}

// FindOrCreateCategory resolves a category by exact name, creating it when
// missing. The DO UPDATE arm makes RETURNING yield the existing row, so two
// concurrent calls racing on the same name resolve to the same id.
func (r *PostgresCategoryRepository) FindOrCreateCategory(ctx context.Context, q database.Querier, name string) (Category, error) {
	if q == nil {
		q = r.db
	}
	var c Category
	row := q.QueryRow(ctx,
		`INSERT INTO categories (id, name) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id, name, created_at`,
		uuid.New(), name)
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		return Category{}, err
	}
	return c, nil
}

func (r *PostgresCategoryRepository) FindOrCreateSubCategory(ctx context.Context, q database.Querier, categoryID uuid.UUID, name string) (SubCategory, error) {
	if q == nil {
		q = r.db
	}
	var s SubCategory
	row := q.QueryRow(ctx,
		`INSERT INTO sub_categories (id, category_id, name) VALUES ($1, $2, $3)
		 ON CONFLICT (category_id, name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id, category_id, name, COALESCE(keywords, '{}'), created_at`,
		uuid.New(), categoryID, name)
	if err := row.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Keywords, &s.CreatedAt); err != nil {
		return SubCategory{}, err
	}
	return s, nil
}
