package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/matchmaker-backend/internal/domain"
	"github.com/gdugdh24/matchmaker-backend/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase struct {
	userRepo   repository.UserRepository
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
	validate   *validator.Validate
	now        func() time.Time
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	bcryptCost int,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		validate:   validator.New(),
		now:        time.Now,
	}
}

// TokenClaims is the payload of issued auth tokens.
type TokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// Signup registers a new account. An email already registered (compared
// case-insensitively) yields ErrUserAlreadyExists and nothing is written.
func (uc *AuthUseCase) Signup(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = domain.NormalizeEmail(email)
	if err := uc.validate.Var(email, "required,email"); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if password == "" {
		return nil, domain.ErrInvalidInput
	}

	_, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrUserAlreadyExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), uc.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, domain.ErrInvalidInput
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		UserID:         uuid.NewString(),
		Email:          email,
		HashedPassword: string(hashed),
		Matches:        []domain.MatchRecord{},
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.issueToken(user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResponse{Token: token, UserID: user.UserID}, nil
}

// Login checks the credentials and issues a fresh token.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.issueToken(user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResponse{Token: token, UserID: user.UserID}, nil
}

// issueToken signs an HS256 token carrying the user id.
func (uc *AuthUseCase) issueToken(userID string) (string, error) {
	now := uc.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(uc.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	return token.SignedString([]byte(uc.jwtSecret))
}
