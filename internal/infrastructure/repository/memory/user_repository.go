package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/footynet/footynet/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	items map[string]user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{items: make(map[string]user.User)}
}

func (r *UserRepository) Create(_ context.Context, item user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return fmt.Errorf("user %s already exists", item.ID)
	}

	r.items[item.ID] = cloneUser(item)
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[userID]
	if !ok {
		return user.User{}, false, nil
	}

	return cloneUser(item), true, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Username == username {
			return cloneUser(item), true, nil
		}
	}

	return user.User{}, false, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Email == email {
			return cloneUser(item), true, nil
		}
	}

	return user.User{}, false, nil
}

func (r *UserRepository) ListByTeam(_ context.Context, teamID string) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []user.User
	for _, item := range r.items {
		if item.TeamID != nil && *item.TeamID == teamID {
			out = append(out, cloneUser(item))
		}
	}

	return out, nil
}

func (r *UserRepository) SetTeam(_ context.Context, userID string, teamID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[userID]
	if !ok {
		return fmt.Errorf("user %s does not exist", userID)
	}

	if teamID == nil {
		item.TeamID = nil
	} else {
		copied := *teamID
		item.TeamID = &copied
	}
	r.items[userID] = item
	return nil
}

func cloneUser(item user.User) user.User {
	copied := item
	if item.TeamID != nil {
		teamID := *item.TeamID
		copied.TeamID = &teamID
	}
	return copied
}
