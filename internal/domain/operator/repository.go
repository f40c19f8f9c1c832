package operator

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("operator not found")

type Repository interface {
	Create(ctx context.Context, o Operator) error
	GetByID(ctx context.Context, id uuid.UUID) (Operator, error)
	GetByEmail(ctx context.Context, email string) (Operator, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
