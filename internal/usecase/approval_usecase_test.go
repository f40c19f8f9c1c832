package usecase

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"talent-triage/internal/database"
	"talent-triage/internal/domain/taxonomy"
	"talent-triage/internal/repository"

	"github.com/google/uuid"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (t *fakeTx) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}
func (t *fakeTx) QueryRow(context.Context, string, ...any) database.Row { return nil }

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	tx       *fakeTx
	beginErr error
	begun    int
}

func (db *fakeDB) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (db *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}
func (db *fakeDB) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (db *fakeDB) Ping(context.Context) error                            { return nil }
func (db *fakeDB) Close() error                                          { return nil }
func (db *fakeDB) SQLDB() *sql.DB                                        { return nil }

func (db *fakeDB) Begin(context.Context) (database.Tx, error) {
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	db.begun++
	db.tx = &fakeTx{}
	return db.tx, nil
}

func TestApprove_InvalidInput(t *testing.T) {
	db := &fakeDB{}
	uc := NewApprovalUsecase(db, &mockPendingRepo{}, newMockCategoryRepo(), &mockCandidateRepo{}, nil)

	cases := []struct {
		id       uuid.UUID
		cat, sub string
	}{
		{uuid.Nil, "Informatique & Tech", "Développeur Web"},
		{uuid.New(), "", "Développeur Web"},
		{uuid.New(), "Informatique & Tech", "   "},
	}
	for _, c := range cases {
		if _, err := uc.Approve(context.Background(), c.id, c.cat, c.sub); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", c, err)
		}
	}
	if db.begun != 0 {
		t.Fatalf("validation failures must not open a transaction")
	}
}

func TestApprove_NotFound(t *testing.T) {
	db := &fakeDB{}
	pendings := &mockPendingRepo{byID: map[uuid.UUID]repository.PendingCategory{}}
	uc := NewApprovalUsecase(db, pendings, newMockCategoryRepo(), &mockCandidateRepo{}, nil)

	_, err := uc.Approve(context.Background(), uuid.New(), "Informatique & Tech", "Développeur Web")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if db.tx == nil || !db.tx.rolledBack {
		t.Fatalf("transaction must be rolled back")
	}
}

func TestApprove_AlreadyResolved(t *testing.T) {
	id := uuid.New()
	db := &fakeDB{}
	pendings := &mockPendingRepo{byID: map[uuid.UUID]repository.PendingCategory{
		id: {ID: id, OriginalTitle: "Xylophoniste", Status: repository.PendingStatusRejected},
	}}
	uc := NewApprovalUsecase(db, pendings, newMockCategoryRepo(), &mockCandidateRepo{}, nil)

	_, err := uc.Approve(context.Background(), id, "Informatique & Tech", "Développeur Web")
	if !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}
	if db.tx.committed {
		t.Fatalf("nothing may commit for a resolved entry")
	}
}

func TestApprove_LostRaceOnStatusFlip(t *testing.T) {
	id := uuid.New()
	db := &fakeDB{}
	pendings := &mockPendingRepo{
		byID: map[uuid.UUID]repository.PendingCategory{
			id: {ID: id, OriginalTitle: "Xylophoniste", Status: repository.PendingStatusPending},
		},
		approveErr: repository.ErrNoRow,
	}
	uc := NewApprovalUsecase(db, pendings, newMockCategoryRepo(), &mockCandidateRepo{}, nil)

	_, err := uc.Approve(context.Background(), id, "Informatique & Tech", "Développeur Web")
	if !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}
	if db.tx.committed {
		t.Fatalf("a lost race must not commit")
	}
}

func TestApprove_SweepFailureRollsEverythingBack(t *testing.T) {
	id := uuid.New()
	db := &fakeDB{}
	pendings := &mockPendingRepo{byID: map[uuid.UUID]repository.PendingCategory{
		id: {ID: id, OriginalTitle: "Xylophoniste", Status: repository.PendingStatusPending},
	}}
	candidates := &mockCandidateRepo{reclassifyErr: errors.New("boom")}
	uc := NewApprovalUsecase(db, pendings, newMockCategoryRepo(), candidates, nil)

	_, err := uc.Approve(context.Background(), id, "Artisanat", "Xylophoniste")
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if db.tx.committed || !db.tx.rolledBack {
		t.Fatalf("a failed sweep must roll back the whole approval")
	}
}

func TestApprove_Success(t *testing.T) {
	id := uuid.New()
	db := &fakeDB{}
	pendings := &mockPendingRepo{byID: map[uuid.UUID]repository.PendingCategory{
		id: {ID: id, OriginalTitle: "Xylophoniste", Status: repository.PendingStatusPending},
	}}
	categories := newMockCategoryRepo()
	candidates := &mockCandidateRepo{reclassified: 3}
	uc := NewApprovalUsecase(db, pendings, categories, candidates, nil)

	result, err := uc.Approve(context.Background(), id, "Artisanat", "Xylophoniste")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !db.tx.committed {
		t.Fatalf("approval must commit")
	}
	if result.Category.Name != "Artisanat" || result.SubCategory.Name != "Xylophoniste" {
		t.Fatalf("unexpected taxonomy pair: %+v", result)
	}
	if result.ReclassifiedCandidates != 3 {
		t.Fatalf("expected 3 reclassified candidates, got %d", result.ReclassifiedCandidates)
	}
	if len(pendings.approvedIDs) != 1 || pendings.approvedIDs[0] != id {
		t.Fatalf("expected the entry to be approved")
	}
	if candidates.lastReclassifyTitle != "Xylophoniste" {
		t.Fatalf("sweep must target the stored raw title, got %q", candidates.lastReclassifyTitle)
	}
	if candidates.lastUnclassifiedName != taxonomy.UnclassifiedCategory {
		t.Fatalf("sweep must be scoped to the unclassified bucket, got %q", candidates.lastUnclassifiedName)
	}
	if candidates.lastReclassifyCategory != result.Category.ID || candidates.lastReclassifySub != result.SubCategory.ID {
		t.Fatalf("sweep must point at the approved taxonomy pair")
	}

	// The taxonomy writes and the sweep run on the same transaction handle.
	if categories.lastQuerier != database.Querier(db.tx) {
		t.Fatalf("taxonomy writes must run inside the approval transaction")
	}
	if candidates.lastReclassifyQuerier != database.Querier(db.tx) {
		t.Fatalf("the sweep must run inside the approval transaction")
	}
	if pendings.lastApproveQuerier != database.Querier(db.tx) {
		t.Fatalf("the status flip must run inside the approval transaction")
	}
}
