package usecase

import (
	"context"
	"errors"
	"time"

	"talent-triage/internal/domain/taxonomy"
	"talent-triage/internal/repository"
	"talent-triage/internal/ws"

	"github.com/google/uuid"
)

var (
	ErrNotFound               = errors.New("not found")
	ErrInvalidStateTransition = errors.New("invalid state transition")
)

type PendingItem struct {
	ID                   uuid.UUID
	OriginalTitle        string
	Status               string
	SuggestedCategory    *string
	SuggestedSubCategory *string
	// Guess is the scorer's current best match for the stored title, computed
	// on the fly for the operator. Never persisted: the rule table may have
	// changed since the entry was queued.
	Guess     *taxonomy.Match
	CreatedAt time.Time
}

type PendingUsecase interface {
	ListPending(ctx context.Context) ([]PendingItem, error)
	Reject(ctx context.Context, id uuid.UUID) error
}

type Pending struct {
	repo   repository.PendingCategoryRepository
	scorer *taxonomy.Scorer
}

func NewPendingUsecase(repo repository.PendingCategoryRepository, scorer *taxonomy.Scorer) *Pending {
	return &Pending{repo: repo, scorer: scorer}
}

func (u *Pending) ListPending(ctx context.Context) ([]PendingItem, error) {
	rows, err := u.repo.ListPending(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]PendingItem, 0, len(rows))
	for _, r := range rows {
		item := PendingItem{
			ID:                   r.ID,
			OriginalTitle:        r.OriginalTitle,
			Status:               r.Status,
			SuggestedCategory:    r.SuggestedCategory,
			SuggestedSubCategory: r.SuggestedSubCategory,
			CreatedAt:            r.CreatedAt,
		}
		if u.scorer != nil {
			if m, ok := u.scorer.Categorize(r.OriginalTitle); ok {
				item.Guess = &m
			}
		}
		out = append(out, item)
	}
	return out, nil
}

// Reject moves a pending entry to its terminal rejected state. Rejecting an
// entry that is already approved or rejected is an error, not a no-op.
func (u *Pending) Reject(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}

	entry, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRow) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if entry.Status != repository.PendingStatusPending {
		return ErrInvalidStateTransition
	}

	affected, err := u.repo.MarkRejected(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if affected == 0 {
		// Lost a race with a concurrent approve/reject.
		return ErrInvalidStateTransition
	}

	ws.NotifyPendingResolved(id, repository.PendingStatusRejected)
	return nil
}
