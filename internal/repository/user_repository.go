package repository

import (
	"context"

	"github.com/gdugdh24/matchmaker-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIDs returns every stored user whose id is in userIDs. Order is
	// not guaranteed to follow userIDs.
	FindByIDs(ctx context.Context, userIDs []string) ([]*domain.User, error)
	FindByGender(ctx context.Context, genderIdentity string) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update *domain.ProfileUpdate) (domain.UpdateResult, error)
	// AppendMatch pushes {user_id: targetID} onto the owner's matches without
	// checking for duplicates.
	AppendMatch(ctx context.Context, ownerID, targetID string) (domain.UpdateResult, error)
	Ping(ctx context.Context) error
}
