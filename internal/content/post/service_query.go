// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	stdctx "context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/lingopress/internal/platform/constants"
	"github.com/taibuivan/lingopress/internal/platform/validate"
	"github.com/taibuivan/lingopress/pkg/pagination"
	"github.com/taibuivan/lingopress/pkg/pointer"
	"github.com/taibuivan/lingopress/pkg/slice"
)

// Cache buckets, also used as metric labels.
const (
	bucketLatest      = "latest"
	bucketPublicPost  = "post"
	bucketPinned      = "pinned"
	bucketPinnedPost  = "pinned_post"
	bucketPinnedPaths = "pinned_paths"
)

// PublicPage is a window of the general public bucket.
type PublicPage struct {
	Posts []PublicPost `json:"posts"`
	Total int          `json:"total"`
}

// # Author Reads

// AllPosts lists promoted posts that are not deleted.
func (service *Service) AllPosts(context stdctx.Context) ([]*Post, error) {
	posts, _, err := service.repository.FindMany(context, Query{Created: Present, Deleted: Absent})
	return posts, err
}

// AllPostDrafts lists drafts that are not deleted.
func (service *Service) AllPostDrafts(context stdctx.Context) ([]*Post, error) {
	posts, _, err := service.repository.FindMany(context, Query{Created: Absent, Deleted: Absent})
	return posts, err
}

// GetDraft returns the post only while it is still a draft.
func (service *Service) GetDraft(context stdctx.Context, id string) (*Post, error) {
	p, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if !p.IsDraft() {
		return nil, ErrNotFound
	}
	return p, nil
}

// GetPost returns the post only once it has been promoted.
func (service *Service) GetPost(context stdctx.Context, id string) (*Post, error) {
	p, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if p.IsDraft() {
		return nil, ErrNotFound
	}
	return p, nil
}

// # Public Reads

/*
GetLatestPublicPosts returns a window of the qualifying, non-pinned posts.

Parameters:
  - context: context.Context
  - window: pagination.Window (Skip >= 0, Take within 1..pagination.MaxTake)

Returns:
  - PublicPage: The projected window and the size of the whole bucket
  - error: Validation error for an out-of-range window, or storage failures
*/
func (service *Service) GetLatestPublicPosts(context stdctx.Context, window pagination.Window) (PublicPage, error) {
	if field, message, ok := window.Validate(); !ok {
		return PublicPage{}, validate.RequiredError(field, message)
	}

	key := fmt.Sprintf("%s:%d:%d", bucketLatest, window.Skip, window.Take)

	return readPublic(service, context, bucketLatest, key, func(ctx stdctx.Context) (PublicPage, error) {
		posts, total, err := service.repository.FindMany(ctx, Query{
			Public:  true,
			Starred: pointer.To(false),
			Skip:    window.Skip,
			Take:    window.Take,
		})
		if err != nil {
			return PublicPage{}, err
		}
		return PublicPage{Posts: project(posts), Total: total}, nil
	})
}

// GetPublicPost returns a qualifying, non-pinned post.
func (service *Service) GetPublicPost(context stdctx.Context, id string) (PublicPost, error) {
	return service.publicPost(context, bucketPublicPost, id, false)
}

// GetPinnedPublicPosts returns every qualifying pinned post.
func (service *Service) GetPinnedPublicPosts(context stdctx.Context) ([]PublicPost, error) {
	return readPublic(service, context, bucketPinned, bucketPinned, func(ctx stdctx.Context) ([]PublicPost, error) {
		posts, err := service.pinned(ctx)
		if err != nil {
			return nil, err
		}
		return project(posts), nil
	})
}

// GetPinnedPublicPost returns a qualifying pinned post.
func (service *Service) GetPinnedPublicPost(context stdctx.Context, id string) (PublicPost, error) {
	return service.publicPost(context, bucketPinnedPost, id, true)
}

// GetPinnedPublicPaths returns the localised titles of every pinned post.
func (service *Service) GetPinnedPublicPaths(context stdctx.Context) ([]PinnedPath, error) {
	return readPublic(service, context, bucketPinnedPaths, bucketPinnedPaths, func(ctx stdctx.Context) ([]PinnedPath, error) {
		posts, err := service.pinned(ctx)
		if err != nil {
			return nil, err
		}
		return slice.Map(posts, PinnedPathsOf), nil
	})
}

func (service *Service) pinned(context stdctx.Context) ([]*Post, error) {
	posts, _, err := service.repository.FindMany(context, Query{Public: true, Starred: pointer.To(true)})
	return posts, err
}

func (service *Service) publicPost(context stdctx.Context, bucket, id string, starred bool) (PublicPost, error) {
	return readPublic(service, context, bucket, bucket+":"+id, func(ctx stdctx.Context) (PublicPost, error) {
		p, err := service.repository.FindByID(ctx, id)
		if err != nil {
			return PublicPost{}, err
		}
		view, ok := ToPublicView(p)
		if !ok || p.Starred != starred {
			return PublicPost{}, ErrNotFound
		}
		return view, nil
	})
}

func project(posts []*Post) []PublicPost {
	views := make([]PublicPost, 0, len(posts))
	for _, p := range posts {
		if view, ok := ToPublicView(p); ok {
			views = append(views, view)
		}
	}
	return views
}

/*
readPublic serves a public read from the cache, coalescing concurrent misses
for the same key into a single store query.

The shared load runs on a context detached from any single caller and bounded
by constants.PublicLoadTimeout. Each caller stops waiting when its own context
is done. Cache failures are logged and treated as misses.
*/
func readPublic[T any](service *Service, context stdctx.Context, bucket, key string, load func(stdctx.Context) (T, error)) (T, error) {
	var zero T

	var cached T
	hit, err := service.cache.Get(context, key, &cached)
	if err != nil {
		service.logger.WarnContext(context, "public_cache_get_failed", slog.String("key", key), slog.Any("error", err))
	}
	if hit {
		service.metrics.RecordCacheHit(context, bucket)
		return cached, nil
	}
	service.metrics.RecordCacheMiss(context, bucket)

	detached := stdctx.WithoutCancel(context)
	results := service.group.DoChan(key, func() (any, error) {
		loadCtx, cancel := stdctx.WithTimeout(detached, constants.PublicLoadTimeout)
		defer cancel()

		loaded, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if err := service.cache.Set(loadCtx, key, loaded); err != nil {
			service.logger.WarnContext(loadCtx, "public_cache_set_failed", slog.String("key", key), slog.Any("error", err))
		}
		return loaded, nil
	})

	select {
	case <-context.Done():
		return zero, context.Err()
	case result := <-results:
		if result.Err != nil {
			return zero, result.Err
		}
		return result.Val.(T), nil
	}
}
