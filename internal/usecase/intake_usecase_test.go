package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-triage/internal/database"
	"talent-triage/internal/domain/taxonomy"
	"talent-triage/internal/repository"

	"github.com/google/uuid"
)

type mockCategoryRepo struct {
	categories map[string]repository.Category
	subs       map[string]repository.SubCategory

	findCatErr error
	findSubErr error

	lastQuerier database.Querier
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{
		categories: map[string]repository.Category{},
		subs:       map[string]repository.SubCategory{},
	}
}

func (m *mockCategoryRepo) ListCategories(context.Context) ([]repository.Category, error) {
	return nil, nil
}

func (m *mockCategoryRepo) ListSubCategories(context.Context) ([]repository.SubCategory, error) {
	return nil, nil
}

func (m *mockCategoryRepo) CreateCategory(_ context.Context, name string) (repository.Category, error) {
	c := repository.Category{ID: uuid.New(), Name: name}
	m.categories[name] = c
	return c, nil
}

func (m *mockCategoryRepo) CreateSubCategory(_ context.Context, categoryID uuid.UUID, name string, keywords []string) (repository.SubCategory, error) {
	s := repository.SubCategory{ID: uuid.New(), CategoryID: categoryID, Name: name, Keywords: keywords}
	m.subs[name] = s
	return s, nil
}

func (m *mockCategoryRepo) FindOrCreateCategory(_ context.Context, q database.Querier, name string) (repository.Category, error) {
	m.lastQuerier = q
	if m.findCatErr != nil {
		return repository.Category{}, m.findCatErr
	}
	if c, ok := m.categories[name]; ok {
		return c, nil
	}
	c := repository.Category{ID: uuid.New(), Name: name}
	m.categories[name] = c
	return c, nil
}

func (m *mockCategoryRepo) FindOrCreateSubCategory(_ context.Context, q database.Querier, categoryID uuid.UUID, name string) (repository.SubCategory, error) {
	m.lastQuerier = q
	if m.findSubErr != nil {
		return repository.SubCategory{}, m.findSubErr
	}
	if s, ok := m.subs[name]; ok {
		return s, nil
	}
	s := repository.SubCategory{ID: uuid.New(), CategoryID: categoryID, Name: name}
	m.subs[name] = s
	return s, nil
}

type mockCandidateRepo struct {
	created  []repository.Candidate
	listRows []repository.CandidateListRow

	createErr     error
	listErr       error
	reclassifyErr error

	reclassified int64

	lastReclassifyTitle    string
	lastReclassifyCategory uuid.UUID
	lastReclassifySub      uuid.UUID
	lastUnclassifiedName   string
	lastReclassifyQuerier  database.Querier
}

func (m *mockCandidateRepo) Create(_ context.Context, c repository.Candidate) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, c)
	return nil
}

func (m *mockCandidateRepo) List(context.Context, int, int) ([]repository.CandidateListRow, error) {
	return m.listRows, m.listErr
}

func (m *mockCandidateRepo) ReclassifyUnclassified(_ context.Context, q database.Querier, originalTitle string, categoryID, subCategoryID uuid.UUID, unclassifiedName string) (int64, error) {
	m.lastReclassifyQuerier = q
	m.lastReclassifyTitle = originalTitle
	m.lastReclassifyCategory = categoryID
	m.lastReclassifySub = subCategoryID
	m.lastUnclassifiedName = unclassifiedName
	return m.reclassified, m.reclassifyErr
}

func newIntake(categories *mockCategoryRepo, candidates *mockCandidateRepo, pendings *mockPendingRepo) *Intake {
	return NewIntakeUsecase(taxonomy.NewScorer(taxonomy.DefaultRules()), candidates, categories, pendings)
}

func TestSubmitCandidate_InvalidInput(t *testing.T) {
	uc := newIntake(newMockCategoryRepo(), &mockCandidateRepo{}, &mockPendingRepo{})

	cases := []SubmitCandidateInput{
		{FullName: "", Email: "a@b.fr", PositionSearched: "Développeur Web"},
		{FullName: "Jean Dupont", Email: "", PositionSearched: "Développeur Web"},
		{FullName: "Jean Dupont", Email: "a@b.fr", PositionSearched: "   "},
	}
	for _, in := range cases {
		if _, err := uc.SubmitCandidate(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestSubmitCandidate_MatchAssignsTaxonomy(t *testing.T) {
	categories := newMockCategoryRepo()
	candidates := &mockCandidateRepo{}
	pendings := &mockPendingRepo{}
	uc := newIntake(categories, candidates, pendings)

	result, err := uc.SubmitCandidate(context.Background(), SubmitCandidateInput{
		FullName:         "Jean Dupont",
		Email:            "jean@example.fr",
		PositionSearched: "Développeur Web",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.Queued {
		t.Fatalf("a matched title must not be queued")
	}
	if result.Match == nil || result.Match.SubCategory != "Développeur Web" {
		t.Fatalf("unexpected match: %+v", result.Match)
	}
	if result.Candidate.CategoryName != "Informatique & Tech" {
		t.Fatalf("unexpected category: %s", result.Candidate.CategoryName)
	}
	if len(candidates.created) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates.created))
	}
	if candidates.created[0].SubCategoryID == nil {
		t.Fatalf("matched candidate must carry a sub-category")
	}
	if len(pendings.createdTitles) != 0 {
		t.Fatalf("matched title must not enter the review queue")
	}
}

func TestSubmitCandidate_NoMatchQueuesForReview(t *testing.T) {
	categories := newMockCategoryRepo()
	candidates := &mockCandidateRepo{}
	pendings := &mockPendingRepo{}
	uc := newIntake(categories, candidates, pendings)

	result, err := uc.SubmitCandidate(context.Background(), SubmitCandidateInput{
		FullName:         "Marie Curie",
		Email:            "marie@example.fr",
		PositionSearched: "Xylophoniste",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !result.Queued {
		t.Fatalf("an unmatched title must be queued")
	}
	if result.Match != nil {
		t.Fatalf("expected no match, got %+v", result.Match)
	}
	if result.Candidate.CategoryName != taxonomy.UnclassifiedCategory {
		t.Fatalf("expected the unclassified bucket, got %s", result.Candidate.CategoryName)
	}
	if len(pendings.createdTitles) != 1 || pendings.createdTitles[0] != "Xylophoniste" {
		t.Fatalf("expected the raw title in the queue, got %v", pendings.createdTitles)
	}
	if len(candidates.created) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates.created))
	}
	if candidates.created[0].SubCategoryID != nil {
		t.Fatalf("an unmatched candidate has no sub-category")
	}
}

func TestListCandidates_InvalidRange(t *testing.T) {
	uc := newIntake(newMockCategoryRepo(), &mockCandidateRepo{}, &mockPendingRepo{})

	if _, err := uc.ListCandidates(context.Background(), -1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.ListCandidates(context.Background(), 0, -5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
