package feed

import (
	"context"
	"fmt"

	"github.com/gdugdh24/matchmaker-backend/internal/domain"
	"github.com/gdugdh24/matchmaker-backend/internal/repository"
)

type FeedUseCase struct {
	userRepo repository.UserRepository
}

func NewFeedUseCase(userRepo repository.UserRepository) *FeedUseCase {
	return &FeedUseCase{
		userRepo: userRepo,
	}
}

// ListByGender returns every user whose gender_identity equals gender. An
// empty gender selects users that never set one.
func (uc *FeedUseCase) ListByGender(ctx context.Context, gender string) ([]*domain.User, error) {
	users, err := uc.userRepo.FindByGender(ctx, gender)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}
