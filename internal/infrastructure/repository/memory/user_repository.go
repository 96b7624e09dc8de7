package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/riskibarqy/cantera/internal/domain/user"
)

type UserRepository struct {
	mu         sync.RWMutex
	byID       map[int64]user.User
	byUsername map[string]int64
}

func NewUserRepository(users []user.User) *UserRepository {
	r := &UserRepository{
		byID:       make(map[int64]user.User, len(users)),
		byUsername: make(map[string]int64, len(users)),
	}
	for _, u := range users {
		r.byID[u.ID] = u
		r.byUsername[strings.ToLower(u.Username)] = u.ID
	}
	return r
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return user.User{}, false, nil
	}
	return cloneUser(r.byID[id]), true, nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return user.User{}, false, nil
	}
	return cloneUser(u), true, nil
}

func cloneUser(u user.User) user.User {
	u.TeamID = cloneInt64Ptr(u.TeamID)
	return u
}
