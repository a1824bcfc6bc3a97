// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"sort"
	"sync"

	"github.com/taibuivan/lingopress/internal/platform/apperr"
)

// MemoryRepository keeps posts in process memory. It backs tests and the
// "memory" store driver.
type MemoryRepository struct {
	mu    sync.RWMutex
	posts map[string]*Post
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{posts: make(map[string]*Post)}
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*Post, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	stored, ok := repository.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return stored.Clone(), nil
}

func (repository *MemoryRepository) FindMany(_ context.Context, query Query) ([]*Post, int, error) {
	repository.mu.RLock()
	matched := make([]*Post, 0, len(repository.posts))
	for _, stored := range repository.posts {
		if query.Matches(stored) {
			matched = append(matched, stored.Clone())
		}
	}
	repository.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return Before(matched[i], matched[j]) })

	total := len(matched)
	start := min(max(query.Skip, 0), total)
	end := total
	if query.Take > 0 {
		end = min(start+query.Take, total)
	}
	return matched[start:end], total, nil
}

func (repository *MemoryRepository) Insert(_ context.Context, p *Post) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.posts[p.ID]; exists {
		return apperr.Conflict("Post already exists")
	}
	p.Version = 1
	repository.posts[p.ID] = p.Clone()
	return nil
}

func (repository *MemoryRepository) Save(_ context.Context, p *Post) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.posts[p.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Version != p.Version {
		return ErrVersionConflict
	}
	p.Version++
	repository.posts[p.ID] = p.Clone()
	return nil
}
