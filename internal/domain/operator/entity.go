package operator

import (
	"time"

	"github.com/google/uuid"
)

// Operator is a human reviewer of the pending-categorization queue.
type Operator struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
