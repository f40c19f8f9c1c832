package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-triage/internal/domain/operator"
	"talent-triage/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockOperatorRepo struct {
	byEmail map[string]operator.Operator
	byID    map[uuid.UUID]operator.Operator

	createErr error
}

func newMockOperatorRepo() *mockOperatorRepo {
	return &mockOperatorRepo{
		byEmail: map[string]operator.Operator{},
		byID:    map[uuid.UUID]operator.Operator{},
	}
}

func (m *mockOperatorRepo) Create(_ context.Context, o operator.Operator) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.byEmail[o.Email] = o
	m.byID[o.ID] = o
	return nil
}

func (m *mockOperatorRepo) GetByID(_ context.Context, id uuid.UUID) (operator.Operator, error) {
	o, ok := m.byID[id]
	if !ok {
		return operator.Operator{}, operator.ErrNotFound
	}
	return o, nil
}

func (m *mockOperatorRepo) GetByEmail(_ context.Context, email string) (operator.Operator, error) {
	o, ok := m.byEmail[email]
	if !ok {
		return operator.Operator{}, operator.ErrNotFound
	}
	return o, nil
}

func (m *mockOperatorRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func testJWT() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestRegister_WeakPassword(t *testing.T) {
	uc := NewAuthUsecase(newMockOperatorRepo(), testJWT())

	_, _, _, err := uc.Register(context.Background(), RegisterInput{Email: "op@example.fr", Password: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockOperatorRepo()
	repo.byEmail["op@example.fr"] = operator.Operator{ID: uuid.New(), Email: "op@example.fr"}
	uc := NewAuthUsecase(repo, testJWT())

	_, _, _, err := uc.Register(context.Background(), RegisterInput{Email: "OP@example.fr", Password: "supersecret"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegisterThenLogin(t *testing.T) {
	repo := newMockOperatorRepo()
	uc := NewAuthUsecase(repo, testJWT())

	op, access, refresh, err := uc.Register(context.Background(), RegisterInput{Email: "op@example.fr", Password: "supersecret"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if op.Email != "op@example.fr" || access == "" || refresh == "" {
		t.Fatalf("incomplete register result: %+v", op)
	}

	if _, _, _, err := uc.Login(context.Background(), LoginInput{Email: "op@example.fr", Password: "supersecret"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	_, _, _, err = uc.Login(context.Background(), LoginInput{Email: "op@example.fr", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := NewAuthUsecase(newMockOperatorRepo(), testJWT())

	_, _, _, err := uc.Login(context.Background(), LoginInput{Email: "nobody@example.fr", Password: "whatever"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefresh_RotatesTokens(t *testing.T) {
	repo := newMockOperatorRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	op := operator.Operator{ID: uuid.New(), Email: "op@example.fr", PasswordHash: string(hash)}
	repo.byEmail[op.Email] = op
	repo.byID[op.ID] = op

	uc := NewAuthUsecase(repo, testJWT())

	_, _, refresh, err := uc.Login(context.Background(), LoginInput{Email: op.Email, Password: "supersecret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	access2, refresh2, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if access2 == "" || refresh2 == "" {
		t.Fatalf("refresh must issue a new token pair")
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	repo := newMockOperatorRepo()
	op := operator.Operator{ID: uuid.New(), Email: "op@example.fr"}
	repo.byID[op.ID] = op

	svc := testJWT()
	access, err := svc.GenerateAccessToken(op.ID, op.Email)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	uc := NewAuthUsecase(repo, svc)
	if _, _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}
