package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-triage/internal/database"
	"talent-triage/internal/domain/taxonomy"
	"talent-triage/internal/infrastructure/cache"
	"talent-triage/internal/repository"
	"talent-triage/internal/ws"

	"github.com/google/uuid"
)

type ApprovalResult struct {
	Category               repository.Category
	SubCategory            repository.SubCategory
	ReclassifiedCandidates int64
}

type ApprovalUsecase interface {
	Approve(ctx context.Context, pendingID uuid.UUID, categoryName, subCategoryName string) (ApprovalResult, error)
}

// Approval applies an operator's decision on a pending entry. The whole
// operation runs in one database transaction: taxonomy find-or-create, the
// status flip and the historical sweep commit together or not at all.
type Approval struct {
	db         database.DB
	pendings   repository.PendingCategoryRepository
	categories repository.CategoryRepository
	candidates repository.CandidateRepository
	cache      *cache.Redis
}

func NewApprovalUsecase(
	db database.DB,
	pendings repository.PendingCategoryRepository,
	categories repository.CategoryRepository,
	candidates repository.CandidateRepository,
	rcache *cache.Redis,
) *Approval {
	return &Approval{db: db, pendings: pendings, categories: categories, candidates: candidates, cache: rcache}
}

func (u *Approval) Approve(ctx context.Context, pendingID uuid.UUID, categoryName, subCategoryName string) (ApprovalResult, error) {
	categoryName = strings.TrimSpace(categoryName)
	subCategoryName = strings.TrimSpace(subCategoryName)

	if pendingID == uuid.Nil || categoryName == "" || subCategoryName == "" {
		return ApprovalResult{}, ErrInvalidInput
	}
	if len(categoryName) > maxNameLength || len(subCategoryName) > maxNameLength {
		return ApprovalResult{}, ErrInvalidInput
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return ApprovalResult{}, ErrInternal
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	pending, err := u.pendings.GetForUpdate(ctx, tx, pendingID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRow) {
			return ApprovalResult{}, ErrNotFound
		}
		return ApprovalResult{}, ErrInternal
	}
	if pending.Status != repository.PendingStatusPending {
		return ApprovalResult{}, ErrInvalidStateTransition
	}

	cat, err := u.categories.FindOrCreateCategory(ctx, tx, categoryName)
	if err != nil {
		return ApprovalResult{}, ErrInternal
	}
	sub, err := u.categories.FindOrCreateSubCategory(ctx, tx, cat.ID, subCategoryName)
	if err != nil {
		return ApprovalResult{}, ErrInternal
	}

	if err := u.pendings.MarkApproved(ctx, tx, pendingID, categoryName, subCategoryName); err != nil {
		if errors.Is(err, repository.ErrNoRow) {
			return ApprovalResult{}, ErrInvalidStateTransition
		}
		return ApprovalResult{}, ErrInternal
	}

	// Repair history: every candidate still parked in the unclassified bucket
	// under this exact raw title follows the operator's decision. Candidates
	// manually moved to another category stay where they are.
	moved, err := u.candidates.ReclassifyUnclassified(ctx, tx, pending.OriginalTitle, cat.ID, sub.ID, taxonomy.UnclassifiedCategory)
	if err != nil {
		return ApprovalResult{}, ErrInternal
	}

	if err := tx.Commit(ctx); err != nil {
		return ApprovalResult{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.InvalidateTaxonomy(ctx)
	}
	ws.NotifyPendingResolved(pendingID, repository.PendingStatusApproved)

	return ApprovalResult{Category: cat, SubCategory: sub, ReclassifiedCandidates: moved}, nil
}
