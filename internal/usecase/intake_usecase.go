package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"talent-triage/internal/domain/taxonomy"
	"talent-triage/internal/repository"
	"talent-triage/internal/ws"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

const maxNameLength = 255

type SubmitCandidateInput struct {
	FullName         string
	Email            string
	PositionSearched string
}

type CandidateItem struct {
	ID               uuid.UUID
	FullName         string
	Email            string
	PositionSearched string
	CategoryName     string
	SubCategoryName  *string
	CreatedAt        time.Time
}

type SubmitCandidateResult struct {
	Candidate CandidateItem
	// Match is the scorer's winning rule, nil when the title was queued for
	// review instead.
	Match  *taxonomy.Match
	Queued bool
}

type IntakeUsecase interface {
	SubmitCandidate(ctx context.Context, in SubmitCandidateInput) (SubmitCandidateResult, error)
	ListCandidates(ctx context.Context, limit, offset int) ([]CandidateItem, error)
}

type Intake struct {
	scorer     *taxonomy.Scorer
	candidates repository.CandidateRepository
	categories repository.CategoryRepository
	pendings   repository.PendingCategoryRepository
}

func NewIntakeUsecase(
	scorer *taxonomy.Scorer,
	candidates repository.CandidateRepository,
	categories repository.CategoryRepository,
	pendings repository.PendingCategoryRepository,
) *Intake {
	return &Intake{scorer: scorer, candidates: candidates, categories: categories, pendings: pendings}
}

// SubmitCandidate files a new candidate. A confident match assigns the
// matched taxonomy pair directly; otherwise the candidate lands in the
// unclassified bucket and the raw title joins the review queue.
func (u *Intake) SubmitCandidate(ctx context.Context, in SubmitCandidateInput) (SubmitCandidateResult, error) {
	fullName := strings.TrimSpace(in.FullName)
	email := strings.TrimSpace(in.Email)
	title := strings.TrimSpace(in.PositionSearched)

	if fullName == "" || email == "" || title == "" {
		return SubmitCandidateResult{}, ErrInvalidInput
	}
	if len(fullName) > maxNameLength || len(title) > maxNameLength {
		return SubmitCandidateResult{}, ErrInvalidInput
	}

	match, matched := u.scorer.Categorize(title)

	candidate := repository.Candidate{
		ID:               uuid.New(),
		FullName:         fullName,
		Email:            email,
		PositionSearched: title,
	}
	result := SubmitCandidateResult{}

	if matched {
		// Re-resolve taxonomy rows by name on every submission: the admin may
		// rename or delete rows between scoring runs.
		cat, err := u.categories.FindOrCreateCategory(ctx, nil, match.Category)
		if err != nil {
			return SubmitCandidateResult{}, ErrInternal
		}
		sub, err := u.categories.FindOrCreateSubCategory(ctx, nil, cat.ID, match.SubCategory)
		if err != nil {
			return SubmitCandidateResult{}, ErrInternal
		}

		candidate.CategoryID = cat.ID
		candidate.SubCategoryID = &sub.ID

		m := match
		result.Match = &m
		result.Candidate = CandidateItem{
			CategoryName:    cat.Name,
			SubCategoryName: &sub.Name,
		}
	} else {
		bucket, err := u.categories.FindOrCreateCategory(ctx, nil, taxonomy.UnclassifiedCategory)
		if err != nil {
			return SubmitCandidateResult{}, ErrInternal
		}

		pending, err := u.pendings.Create(ctx, title)
		if err != nil {
			return SubmitCandidateResult{}, ErrInternal
		}
		ws.NotifyPendingCreated(pending.ID, pending.OriginalTitle)

		candidate.CategoryID = bucket.ID
		result.Queued = true
		result.Candidate = CandidateItem{CategoryName: bucket.Name}
	}

	if err := u.candidates.Create(ctx, candidate); err != nil {
		return SubmitCandidateResult{}, ErrInternal
	}

	result.Candidate.ID = candidate.ID
	result.Candidate.FullName = candidate.FullName
	result.Candidate.Email = candidate.Email
	result.Candidate.PositionSearched = candidate.PositionSearched
	return result, nil
}

func (u *Intake) ListCandidates(ctx context.Context, limit, offset int) ([]CandidateItem, error) {
	if limit < 0 || offset < 0 {
		return nil, ErrInvalidInput
	}
	if limit == 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	rows, err := u.candidates.List(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]CandidateItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, CandidateItem{
			ID:               r.ID,
			FullName:         r.FullName,
			Email:            r.Email,
			PositionSearched: r.PositionSearched,
			CategoryName:     r.CategoryName,
			SubCategoryName:  r.SubCategoryName,
			CreatedAt:        r.CreatedAt,
		})
	}
	return out, nil
}
