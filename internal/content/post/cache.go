// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import "context"

// # Public Read Cache

// PublicCache stores rendered public query results. Any post mutation
// invalidates every entry at once.
type PublicCache interface {
	/*
		Get decodes the entry stored under key into dst.

		Returns:
		  - bool: false on a miss
		  - error: Cache failures; callers treat them as a miss
	*/
	Get(context context.Context, key string, dst any) (bool, error)

	// Set stores value under key.
	Set(context context.Context, key string, value any) error

	// Invalidate drops every entry.
	Invalidate(context context.Context) error
}

// NoopCache never stores anything.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NoopCache) Set(context.Context, string, any) error         { return nil }
func (NoopCache) Invalidate(context.Context) error               { return nil }
