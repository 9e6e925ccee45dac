package profile

import (
	"context"
	"testing"

	"github.com/gdugdh24/matchmaker-backend/internal/domain"
	"github.com/gdugdh24/matchmaker-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newSeeded(t *testing.T) (*ProfileUseCase, *memory.UserRepository) {
	t.Helper()
	repo := memory.NewUserRepository()
	for _, id := range []string{"u1", "u2", "u3"} {
		require.NoError(t, repo.Create(context.Background(), &domain.User{
			UserID:    id,
			Email:     id + "@example.com",
			FirstName: "name-" + id,
			About:     "about " + id,
		}))
	}
	return NewProfileUseCase(repo), repo
}

func TestGetUser(t *testing.T) {
	uc, _ := newSeeded(t)
	ctx := context.Background()

	u, err := uc.GetUser(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "name-u2", u.FirstName)

	_, err = uc.GetUser(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.GetUser(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetUsersByIDs(t *testing.T) {
	uc, _ := newSeeded(t)
	ctx := context.Background()

	users, err := uc.GetUsersByIDs(ctx, []string{"u3", "u1", "missing"})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.ElementsMatch(t, []string{"u1", "u3"}, []string{users[0].UserID, users[1].UserID})

	users, err = uc.GetUsersByIDs(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUpdateProfile_MergesFields(t *testing.T) {
	uc, repo := newSeeded(t)
	ctx := context.Background()

	res, err := uc.UpdateProfile(ctx, &UpdateProfileRequest{
		UserID:         "u1",
		FirstName:      strPtr("Ana"),
		GenderIdentity: strPtr("woman"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)

	u, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.FirstName)
	assert.Equal(t, "woman", u.GenderIdentity)
	assert.Equal(t, "about u1", u.About, "unset fields are kept")
}

func TestUpdateProfile_NoFieldsStillFindsUser(t *testing.T) {
	uc, _ := newSeeded(t)

	res, err := uc.UpdateProfile(context.Background(), &UpdateProfileRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)
	assert.Zero(t, res.ModifiedCount)
}

func TestUpdateProfile_NotFound(t *testing.T) {
	uc, _ := newSeeded(t)

	_, err := uc.UpdateProfile(context.Background(), &UpdateProfileRequest{UserID: "ghost", About: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.UpdateProfile(context.Background(), &UpdateProfileRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
