// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"sort"
	"sync"
)

type MemoryRepository struct {
	mu   sync.RWMutex
	tags map[[2]string]Tag
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tags: make(map[[2]string]Tag)}
}

func (repository *MemoryRepository) List(_ context.Context, locale string) ([]*Tag, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	tags := make([]*Tag, 0)
	for key, t := range repository.tags {
		if key[0] == locale {
			t := t
			tags = append(tags, &t)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Tag < tags[j].Tag })
	return tags, nil
}

func (repository *MemoryRepository) Add(_ context.Context, tag *Tag) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	key := [2]string{tag.Locale, tag.Tag}
	if _, exists := repository.tags[key]; !exists {
		repository.tags[key] = *tag
	}
	return nil
}

func (repository *MemoryRepository) Remove(_ context.Context, locale, tag string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	delete(repository.tags, [2]string{locale, tag})
	return nil
}
