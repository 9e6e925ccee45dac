package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdugdh24/matchmaker-backend/internal/domain"
	"github.com/gdugdh24/matchmaker-backend/internal/repository/memory"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// countingRepo records Create calls on top of the in-memory store.
type countingRepo struct {
	*memory.UserRepository
	creates int
}

func (r *countingRepo) Create(ctx context.Context, user *domain.User) error {
	r.creates++
	return r.UserRepository.Create(ctx, user)
}

func newTestUseCase() (*AuthUseCase, *countingRepo) {
	repo := &countingRepo{UserRepository: memory.NewUserRepository()}
	return NewAuthUseCase(repo, testSecret, 24*time.Hour, bcrypt.MinCost), repo
}

func parseToken(t *testing.T, token string) *TokenClaims {
	t.Helper()
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	return claims
}

func TestSignup_CreatesUserAndToken(t *testing.T) {
	uc, repo := newTestUseCase()
	ctx := context.Background()

	resp, err := uc.Signup(ctx, "  Alice@Example.COM ", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, resp.UserID)

	claims := parseToken(t, resp.Token)
	assert.Equal(t, resp.UserID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)

	user, err := repo.GetByID(ctx, resp.UserID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret", user.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("secret")))
	assert.Empty(t, user.Matches)
}

func TestSignup_DuplicateEmailCaseInsensitive(t *testing.T) {
	uc, repo := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Signup(ctx, "bob@example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, 1, repo.creates)

	_, err = uc.Signup(ctx, "BOB@Example.com", "other")
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	assert.Equal(t, 1, repo.creates, "conflicting signup must not write")
}

func TestSignup_InvalidInput(t *testing.T) {
	uc, repo := newTestUseCase()
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "pw"},
		{"malformed email", "not-an-email", "pw"},
		{"empty password", "carol@example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Signup(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Zero(t, repo.creates)
}

func TestLogin(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	signup, err := uc.Signup(ctx, "dave@example.com", "hunter2")
	require.NoError(t, err)

	resp, err := uc.Login(ctx, "DAVE@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, signup.UserID, resp.UserID)
	assert.Equal(t, signup.UserID, parseToken(t, resp.Token).UserID)

	_, err = uc.Login(ctx, "dave@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(ctx, "nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

type failingRepo struct {
	*memory.UserRepository
}

func (failingRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, errors.New("connection refused")
}

func TestLogin_StoreFailure(t *testing.T) {
	uc := NewAuthUseCase(failingRepo{memory.NewUserRepository()}, testSecret, time.Hour, bcrypt.MinCost)

	_, err := uc.Login(context.Background(), "erin@example.com", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Signup(context.Background(), "erin@example.com", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUserAlreadyExists)
}
