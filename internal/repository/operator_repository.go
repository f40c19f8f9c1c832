package repository

import (
	"context"
	"errors"

	"talent-triage/internal/database"
	"talent-triage/internal/domain/operator"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresOperatorRepository struct {
	db database.DB
}

func NewPostgresOperatorRepository(db database.DB) *PostgresOperatorRepository {
	return &PostgresOperatorRepository{db: db}
}

func (r *PostgresOperatorRepository) Create(ctx context.Context, o operator.Operator) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO operators (id, email, password_hash) VALUES ($1, $2, $3)`,
		o.ID, o.Email, o.PasswordHash)
	return err
}

func (r *PostgresOperatorRepository) GetByID(ctx context.Context, id uuid.UUID) (operator.Operator, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at, updated_at FROM operators WHERE id = $1`, id)
	return scanOperator(row)
}

func (r *PostgresOperatorRepository) GetByEmail(ctx context.Context, email string) (operator.Operator, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at, updated_at FROM operators WHERE email = $1`, email)
	return scanOperator(row)
}

func (r *PostgresOperatorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM operators WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanOperator(row database.Row) (operator.Operator, error) {
	var o operator.Operator
	err := row.Scan(&o.ID, &o.Email, &o.PasswordHash, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return operator.Operator{}, operator.ErrNotFound
		}
		return operator.Operator{}, err
	}
	return o, nil
}
