package profile

import (
	"context"
	"fmt"

	"github.com/gdugdh24/matchmaker-backend/internal/domain"
	"github.com/gdugdh24/matchmaker-backend/internal/repository"
)

type ProfileUseCase struct {
	userRepo repository.UserRepository
}

func NewProfileUseCase(userRepo repository.UserRepository) *ProfileUseCase {
	return &ProfileUseCase{
		userRepo: userRepo,
	}
}

// UpdateProfileRequest represents profile update request. UserID selects the
// document; every other non-nil field is merged into it.
type UpdateProfileRequest struct {
	UserID         string  `json:"user_id" binding:"required"`
	FirstName      *string `json:"first_name" binding:"omitempty,max=100"`
	DobDay         *string `json:"dob_day" binding:"omitempty,max=2"`
	DobMonth       *string `json:"dob_month" binding:"omitempty,max=2"`
	DobYear        *string `json:"dob_year" binding:"omitempty,max=4"`
	ShowGender     *bool   `json:"show_gender"`
	GenderIdentity *string `json:"gender_identity" binding:"omitempty,max=50"`
	GenderInterest *string `json:"gender_interest" binding:"omitempty,max=50"`
	URL            *string `json:"url" binding:"omitempty,max=2048"`
	About          *string `json:"about" binding:"omitempty,max=1000"`
}

func (r *UpdateProfileRequest) toUpdate() *domain.ProfileUpdate {
	return &domain.ProfileUpdate{
		FirstName:      r.FirstName,
		DobDay:         r.DobDay,
		DobMonth:       r.DobMonth,
		DobYear:        r.DobYear,
		ShowGender:     r.ShowGender,
		GenderIdentity: r.GenderIdentity,
		GenderInterest: r.GenderInterest,
		URL:            r.URL,
		About:          r.About,
	}
}

// GetUser returns a single user by id
func (uc *ProfileUseCase) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.userRepo.GetByID(ctx, userID)
}

// GetUsersByIDs batch-fetches users. Unknown ids are skipped.
func (uc *ProfileUseCase) GetUsersByIDs(ctx context.Context, userIDs []string) ([]*domain.User, error) {
	if len(userIDs) == 0 {
		return []*domain.User{}, nil
	}
	users, err := uc.userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// UpdateProfile merges the provided fields into the user's document
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (domain.UpdateResult, error) {
	if req.UserID == "" {
		return domain.UpdateResult{}, domain.ErrInvalidInput
	}

	result, err := uc.userRepo.UpdateProfile(ctx, req.UserID, req.toUpdate())
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("failed to update profile: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.UpdateResult{}, domain.ErrUserNotFound
	}

	return result, nil
}
