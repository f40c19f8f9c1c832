package repository

import (
	"context"
	"errors"
	"time"

	"talent-triage/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNoRow is returned when a lookup by id finds nothing.
var ErrNoRow = errors.New("row not found")

const (
	PendingStatusPending  = "pending"
	PendingStatusApproved = "approved"
	PendingStatusRejected = "rejected"
)

// PendingCategory is a review-queue entry for a title the scorer could not
// confidently place. SuggestedCategory/SuggestedSubCategory hold the
// operator's decision once approved, never the scorer's guess.
type PendingCategory struct {
	ID                   uuid.UUID
	OriginalTitle        string
	SuggestedCategory    *string
	SuggestedSubCategory *string
	Status               string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type PendingCategoryRepository interface {
	Create(ctx context.Context, originalTitle string) (PendingCategory, error)
	ListPending(ctx context.Context) ([]PendingCategory, error)
	GetByID(ctx context.Context, id uuid.UUID) (PendingCategory, error)

	// GetForUpdate locks the row for the lifetime of the surrounding
	// transaction so concurrent approvals of the same entry serialize.
	GetForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (PendingCategory, error)
	MarkApproved(ctx context.Context, q database.Querier, id uuid.UUID, categoryName, subCategoryName string) error

	// MarkRejected flips a pending entry to rejected and reports how many
	// rows changed; zero means the entry was no longer pending.
	MarkRejected(ctx context.Context, id uuid.UUID) (int64, error)
}

type PostgresPendingCategoryRepository struct {
	db database.DB
}

func NewPostgresPendingCategoryRepository(db database.DB) *PostgresPendingCategoryRepository {
	return &PostgresPendingCategoryRepository{db: db}
}

const pendingColumns = `id, original_title, suggested_category, suggested_sub_category, status, created_at, updated_at`

func (r *PostgresPendingCategoryRepository) Create(ctx context.Context, originalTitle string) (PendingCategory, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO pending_categories (id, original_title, status)
		 VALUES ($1, $2, $3)
		 RETURNING `+pendingColumns,
		uuid.New(), originalTitle, PendingStatusPending)
	return scanPending(row)
}

func (r *PostgresPendingCategoryRepository) ListPending(ctx context.Context) ([]PendingCategory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+pendingColumns+`
		 FROM pending_categories
		 WHERE status = $1
		 ORDER BY created_at DESC`,
		PendingStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PendingCategory, 0)
	for rows.Next() {
		var p PendingCategory
		if err := rows.Scan(&p.ID, &p.OriginalTitle, &p.SuggestedCategory, &p.SuggestedSubCategory, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPendingCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (PendingCategory, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+pendingColumns+` FROM pending_categories WHERE id = $1`, id)
	return scanPending(row)
}

func (r *PostgresPendingCategoryRepository) GetForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (PendingCategory, error) {
	if q == nil {
		q = r.db
	}
	row := q.QueryRow(ctx,
		`SELECT `+pendingColumns+` FROM pending_categories WHERE id = $1 FOR UPDATE`, id)
	return scanPending(row)
}

func (r *PostgresPendingCategoryRepository) MarkApproved(ctx context.Context, q database.Querier, id uuid.UUID, categoryName, subCategoryName string) error {
	if q == nil {
		q = r.db
	}
	affected, err := q.Exec(ctx,
		`UPDATE pending_categories
		 SET status = $2, suggested_category = $3, suggested_sub_category = $4, updated_at = now()
		 WHERE id = $1 AND status = $5`,
		id, PendingStatusApproved, categoryName, subCategoryName, PendingStatusPending)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoRow
	}
	return nil
}

func (r *PostgresPendingCategoryRepository) MarkRejected(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.db.Exec(ctx,
		`UPDATE pending_categories
		 SET status = $2, updated_at = now()
		 WHERE id = $1 AND status = $3`,
		id, PendingStatusRejected, PendingStatusPending)
}

func scanPending(row database.Row) (PendingCategory, error) {
	var p PendingCategory
	err := row.Scan(&p.ID, &p.OriginalTitle, &p.SuggestedCategory, &p.SuggestedSubCategory, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return PendingCategory{}, ErrNoRow
		}
		return PendingCategory{}, err
	}
	return p, nil
}
