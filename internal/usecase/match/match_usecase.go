package match

import (
	"context"
	"fmt"

	"github.com/gdugdh24/matchmaker-backend/internal/domain"
	"github.com/gdugdh24/matchmaker-backend/internal/repository"
)

type MatchUseCase struct {
	userRepo repository.UserRepository
}

func NewMatchUseCase(userRepo repository.UserRepository) *MatchUseCase {
	return &MatchUseCase{
		userRepo: userRepo,
	}
}

// AddMatchRequest represents a one-sided match
type AddMatchRequest struct {
	UserID        string `json:"userId" binding:"required"`
	MatchedUserID string `json:"matchedUserId" binding:"required"`
}

// AddMatch appends a match record pointing at the matched user to the
// owner's matches. Repeated calls append repeated records.
func (uc *MatchUseCase) AddMatch(ctx context.Context, req *AddMatchRequest) (domain.UpdateResult, error) {
	if req.UserID == "" || req.MatchedUserID == "" {
		return domain.UpdateResult{}, domain.ErrInvalidInput
	}

	result, err := uc.userRepo.AppendMatch(ctx, req.UserID, req.MatchedUserID)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("failed to append match: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.UpdateResult{}, domain.ErrUserNotFound
	}

	return result, nil
}

// ResolveMatches returns the users that userID matched with and that matched
// userID back.
func (uc *MatchUseCase) ResolveMatches(ctx context.Context, userID string) ([]*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return uc.ResolveFromRecords(ctx, userID, user.Matches)
}

// ResolveFromRecords computes the mutual-match set from match records the
// caller already holds. Kept profiles follow the first appearance of their id
// in records. A failed fetch fails the whole resolution.
func (uc *MatchUseCase) ResolveFromRecords(ctx context.Context, userID string, records []domain.MatchRecord) ([]*domain.User, error) {
	ids := uniqueTargets(records)
	if len(ids) == 0 {
		return []*domain.User{}, nil
	}

	candidates, err := uc.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matched users: %w", err)
	}

	byID := make(map[string]*domain.User, len(candidates))
	for _, candidate := range candidates {
		byID[candidate.UserID] = candidate
	}

	mutual := make([]*domain.User, 0, len(candidates))
	for _, id := range ids {
		candidate, ok := byID[id]
		if !ok {
			continue
		}
		if candidate.HasMatch(userID) {
			mutual = append(mutual, candidate)
		}
	}

	return mutual, nil
}

// uniqueTargets returns record targets in first-seen order, skipping empty ids.
func uniqueTargets(records []domain.MatchRecord) []string {
	seen := make(map[string]struct{}, len(records))
	ids := make([]string, 0, len(records))
	for _, r := range records {
		if r.UserID == "" {
			continue
		}
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		ids = append(ids, r.UserID)
	}
	return ids
}
