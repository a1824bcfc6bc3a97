// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"sort"
	"sync"

	"github.com/taibuivan/lingopress/internal/platform/apperr"
)

// MemoryRepository is an in-process [Repository] for development and tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]User)}
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	user, ok := repository.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (repository *MemoryRepository) FindAll(_ context.Context) ([]*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	users := make([]*User, 0, len(repository.users))
	for _, user := range repository.users {
		u := user
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

func (repository *MemoryRepository) Insert(_ context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.users[user.ID]; exists {
		return apperr.Conflict("Duplicate entry").WithKey("errors.duplicate")
	}
	for _, existing := range repository.users {
		if existing.Email == user.Email {
			return apperr.Conflict("Duplicate entry").WithKey("errors.duplicate")
		}
	}

	repository.users[user.ID] = *user
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, ok := repository.users[user.ID]
	if !ok {
		return ErrUserNotFound
	}

	existing.Name = user.Name
	existing.Role = user.Role
	existing.UpdatedAt = user.UpdatedAt
	repository.users[user.ID] = existing
	return nil
}
