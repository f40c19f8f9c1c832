package repository

import (
	"context"
	"time"

	"talent-triage/internal/database"

	"github.com/google/uuid"
)

type Candidate struct {
	ID               uuid.UUID
	FullName         string
	Email            string
	PositionSearched string
	CategoryID       uuid.UUID
	SubCategoryID    *uuid.UUID
	CreatedAt        time.Time
}

type CandidateListRow struct {
	ID               uuid.UUID
	FullName         string
	Email            string
	PositionSearched string
	CategoryName     string
	SubCategoryName  *string
	CreatedAt        time.Time
}

type CandidateRepository interface {
	Create(ctx context.Context, c Candidate) error
	List(ctx context.Context, limit, offset int) ([]CandidateListRow, error)

	// ReclassifyUnclassified moves every candidate whose stored raw title
	// equals originalTitle out of the unclassified bucket into the given
	// taxonomy pair, and reports how many rows moved. Candidates already
	// filed under any other category are left untouched.
	ReclassifyUnclassified(ctx context.Context, q database.Querier, originalTitle string, categoryID, subCategoryID uuid.UUID, unclassifiedName string) (int64, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) Create(ctx context.Context, c Candidate) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidates (id, full_name, email, position_searched, category_id, sub_category_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.FullName, c.Email, c.PositionSearched, c.CategoryID, c.SubCategoryID)
	return err
}

func (r *PostgresCandidateRepository) List(ctx context.Context, limit, offset int) ([]CandidateListRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.full_name, c.email, c.position_searched, cat.name, sub.name, c.created_at
		 FROM candidates c
		 JOIN categories cat ON cat.id = c.category_id
		 LEFT JOIN sub_categories sub ON sub.id = c.sub_category_id
		 ORDER BY c.created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CandidateListRow, 0)
	for rows.Next() {
		var c CandidateListRow
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.PositionSearched, &c.CategoryName, &c.SubCategoryName, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) ReclassifyUnclassified(ctx context.Context, q database.Querier, originalTitle string, categoryID, subCategoryID uuid.UUID, unclassifiedName string) (int64, error) {
	if q == nil {
		q = r.db
	}
	// Exact string match on the stored raw title: whitespace or case variants
	// deliberately do not match.
	return q.Exec(ctx,
		`UPDATE candidates
		 SET category_id = $2, sub_category_id = $3, updated_at = now()
		 WHERE position_searched = $1
		   AND category_id IN (SELECT id FROM categories WHERE name = $4)`,
		originalTitle, categoryID, subCategoryID, unclassifiedName)
}
