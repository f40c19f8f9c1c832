package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-triage/internal/domain/operator"
	"talent-triage/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
)

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type OperatorItem struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (OperatorItem, string, string, error)
	Login(ctx context.Context, in LoginInput) (OperatorItem, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	operators operator.Repository
	jwt       jwt.Service
}

func NewAuthUsecase(operators operator.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{operators: operators, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (OperatorItem, string, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || len(strings.TrimSpace(in.Password)) < 8 {
		return OperatorItem{}, "", "", ErrInvalidInput
	}

	exists, err := u.operators.ExistsByEmail(ctx, email)
	if err != nil {
		return OperatorItem{}, "", "", ErrInternal
	}
	if exists {
		return OperatorItem{}, "", "", ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return OperatorItem{}, "", "", ErrInternal
	}

	op := operator.Operator{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := u.operators.Create(ctx, op); err != nil {
		// Two registrations racing on one email: the unique index decides.
		if exists, exErr := u.operators.ExistsByEmail(ctx, email); exErr == nil && exists {
			return OperatorItem{}, "", "", ErrEmailAlreadyRegistered
		}
		return OperatorItem{}, "", "", ErrInternal
	}

	return u.issueTokens(op)
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (OperatorItem, string, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return OperatorItem{}, "", "", ErrInvalidCredentials
	}

	op, err := u.operators.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, operator.ErrNotFound) {
			return OperatorItem{}, "", "", ErrInvalidCredentials
		}
		return OperatorItem{}, "", "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(in.Password)); err != nil {
		return OperatorItem{}, "", "", ErrInvalidCredentials
	}

	return u.issueTokens(op)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}

	op, err := u.operators.GetByID(ctx, claims.OperatorID)
	if err != nil {
		if errors.Is(err, operator.ErrNotFound) {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(op.ID, op.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(op.ID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func (u *Auth) issueTokens(op operator.Operator) (OperatorItem, string, string, error) {
	access, err := u.jwt.GenerateAccessToken(op.ID, op.Email)
	if err != nil {
		return OperatorItem{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(op.ID)
	if err != nil {
		return OperatorItem{}, "", "", ErrInternal
	}
	return OperatorItem{ID: op.ID, Email: op.Email}, access, refresh, nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return ""
	}
	return strings.ToLower(email)
}
