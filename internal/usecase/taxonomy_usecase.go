package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-triage/internal/infrastructure/cache"
	"talent-triage/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrConflict = errors.New("already exists")

const taxonomyTreeCacheKey = "taxonomy:tree"

type SubCategoryItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Keywords []string  `json:"keywords"`
}

type CategoryTree struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	SubCategories []SubCategoryItem `json:"sub_categories"`
}

type TaxonomyUsecase interface {
	ListCategories(ctx context.Context) ([]CategoryTree, error)
	CreateCategory(ctx context.Context, name string) (CategoryTree, error)
	CreateSubCategory(ctx context.Context, categoryID uuid.UUID, name string, keywords []string) (SubCategoryItem, error)
}

type Taxonomy struct {
	repo  repository.CategoryRepository
	cache *cache.Redis
}

func NewTaxonomyUsecase(repo repository.CategoryRepository, rcache *cache.Redis) *Taxonomy {
	return &Taxonomy{repo: repo, cache: rcache}
}

func (u *Taxonomy) ListCategories(ctx context.Context) ([]CategoryTree, error) {
	var cached []CategoryTree
	if u.cache != nil {
		if hit, err := u.cache.GetJSON(ctx, taxonomyTreeCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	cats, err := u.repo.ListCategories(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	subs, err := u.repo.ListSubCategories(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	byCategory := make(map[uuid.UUID][]SubCategoryItem, len(cats))
	for _, s := range subs {
		byCategory[s.CategoryID] = append(byCategory[s.CategoryID], SubCategoryItem{
			ID:       s.ID,
			Name:     s.Name,
			Keywords: s.Keywords,
		})
	}

	out := make([]CategoryTree, 0, len(cats))
	for _, c := range cats {
		children := byCategory[c.ID]
		if children == nil {
			children = []SubCategoryItem{}
		}
		out = append(out, CategoryTree{ID: c.ID, Name: c.Name, SubCategories: children})
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, taxonomyTreeCacheKey, out, 0)
	}
	return out, nil
}

func (u *Taxonomy) CreateCategory(ctx context.Context, name string) (CategoryTree, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength {
		return CategoryTree{}, ErrInvalidInput
	}

	created, err := u.repo.CreateCategory(ctx, name)
	if err != nil {
		if isUniqueViolation(err) {
			return CategoryTree{}, ErrConflict
		}
		return CategoryTree{}, ErrInternal
	}

	u.invalidate(ctx)
	return CategoryTree{ID: created.ID, Name: created.Name, SubCategories: []SubCategoryItem{}}, nil
}

func (u *Taxonomy) CreateSubCategory(ctx context.Context, categoryID uuid.UUID, name string, keywords []string) (SubCategoryItem, error) {
	name = strings.TrimSpace(name)
	if categoryID == uuid.Nil || name == "" || len(name) > maxNameLength {
		return SubCategoryItem{}, ErrInvalidInput
	}

	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			cleaned = append(cleaned, kw)
		}
	}

	created, err := u.repo.CreateSubCategory(ctx, categoryID, name, cleaned)
	if err != nil {
		if isUniqueViolation(err) {
			return SubCategoryItem{}, ErrConflict
		}
		if isForeignKeyViolation(err) {
			return SubCategoryItem{}, ErrNotFound
		}
		return SubCategoryItem{}, ErrInternal
	}

	u.invalidate(ctx)
	return SubCategoryItem{ID: created.ID, Name: created.Name, Keywords: created.Keywords}, nil
}

func (u *Taxonomy) invalidate(ctx context.Context) {
	if u.cache != nil {
		_ = u.cache.InvalidateTaxonomy(ctx)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
