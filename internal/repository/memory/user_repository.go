// Package memory holds process-local repositories used by STORE_DRIVER=memory
// and by tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gdugdh24/matchmaker-backend/internal/domain"
	"github.com/gdugdh24/matchmaker-backend/internal/repository"
)

type UserRepository struct {
	mu      sync.RWMutex
	users   map[string]*domain.User
	byEmail map[string]string
	order   []string
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:   make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.Matches = append([]domain.MatchRecord{}, u.Matches...)
	return &c
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := domain.NormalizeEmail(user.Email)
	if _, ok := r.byEmail[email]; ok {
		return domain.ErrUserAlreadyExists
	}
	if _, ok := r.users[user.UserID]; ok {
		return domain.ErrUserAlreadyExists
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Matches == nil {
		user.Matches = []domain.MatchRecord{}
	}

	r.users[user.UserID] = cloneUser(user)
	r.byEmail[email] = user.UserID
	r.order = append(r.order, user.UserID)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(r.users[id]), nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, userIDs []string) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = struct{}{}
	}

	users := []*domain.User{}
	for _, id := range r.order {
		if _, ok := wanted[id]; ok {
			users = append(users, cloneUser(r.users[id]))
		}
	}
	return users, nil
}

func (r *UserRepository) FindByGender(ctx context.Context, genderIdentity string) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := []*domain.User{}
	for _, id := range r.order {
		if u := r.users[id]; u.GenderIdentity == genderIdentity {
			users = append(users, cloneUser(u))
		}
	}
	return users, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID string, update *domain.ProfileUpdate) (domain.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return domain.UpdateResult{}, nil
	}
	if update.IsEmpty() {
		return domain.UpdateResult{MatchedCount: 1}, nil
	}

	if update.FirstName != nil {
		u.FirstName = *update.FirstName
	}
	if update.DobDay != nil {
		u.DobDay = *update.DobDay
	}
	if update.DobMonth != nil {
		u.DobMonth = *update.DobMonth
	}
	if update.DobYear != nil {
		u.DobYear = *update.DobYear
	}
	if update.ShowGender != nil {
		u.ShowGender = *update.ShowGender
	}
	if update.GenderIdentity != nil {
		u.GenderIdentity = *update.GenderIdentity
	}
	if update.GenderInterest != nil {
		u.GenderInterest = *update.GenderInterest
	}
	if update.URL != nil {
		u.URL = *update.URL
	}
	if update.About != nil {
		u.About = *update.About
	}
	u.UpdatedAt = time.Now().UTC()

	return domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *UserRepository) AppendMatch(ctx context.Context, ownerID, targetID string) (domain.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[ownerID]
	if !ok {
		return domain.UpdateResult{}, nil
	}
	u.Matches = append(u.Matches, domain.MatchRecord{UserID: targetID})
	u.UpdatedAt = time.Now().UTC()
	return domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *UserRepository) Ping(ctx context.Context) error {
	return nil
}
