// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"log/slog"

	"github.com/taibuivan/lingopress/internal/platform/validate"
	"github.com/taibuivan/lingopress/pkg/uuid"
)

// # Post Lifecycle

/*
CreateDraft stores a new empty draft.

Returns:
  - *Post: The draft at version 1
  - error: Persistence errors
*/
func (service *Service) CreateDraft(context context.Context) (p *Post, err error) {
	defer func() {
		service.metrics.RecordMutation(context, "post_draft_created", statusOf(err))
	}()

	p = New(uuid.New())
	if err := service.repository.Insert(context, p); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "post_draft_created", slog.String("post_id", p.ID))
	return p, nil
}

/*
SaveDraft overwrites the primary content of a post. Promotion state, author
and publish state are left alone.

Parameters:
  - context: context.Context
  - id: string
  - content: Content (language may be empty)

Returns:
  - *Post: The updated aggregate
  - error: ErrNotFound, ErrSameLanguage or validation errors
*/
func (service *Service) SaveDraft(context context.Context, id string, content Content) (*Post, error) {
	content, err := normalizeContent(content, true)
	if err != nil {
		return nil, err
	}

	return service.mutate(context, "post_draft_saved", id, func(p *Post) (bool, error) {
		return true, p.SaveDraft(content)
	})
}

/*
SavePost overwrites the primary content and promotes the post on behalf of
userID.

Description: The first call stamps created and fixes the primary language;
later calls only refresh updated and the author. A post without a primary
language requires one in content.

Returns:
  - *Post: The updated aggregate
  - error: ErrNotFound, account.ErrUserNotFound, ErrSameLanguage or validation errors
*/
func (service *Service) SavePost(context context.Context, id string, content Content, userID string) (*Post, error) {
	content, err := normalizeContent(content, true)
	if err != nil {
		return nil, err
	}

	author := service.authorResolver(userID)
	return service.mutate(context, "post_saved", id, func(p *Post) (bool, error) {
		if p.Language == "" && content.Language == "" {
			return false, validate.RequiredError(FieldLanguage, "This field is required")
		}
		a, err := author(context)
		if err != nil {
			return false, err
		}
		return true, p.SavePost(content, a, service.timestamp())
	})
}

/*
PublishPost publishes the primary variant.

Returns:
  - *Post: The updated aggregate
  - error: ErrNotFound when the post is missing, still a draft or deleted
*/
func (service *Service) PublishPost(context context.Context, id string) (*Post, error) {
	return service.mutate(context, "post_published", id, func(p *Post) (bool, error) {
		return true, p.Publish(service.timestamp())
	})
}

// UnpublishPost clears the primary publish instant.
func (service *Service) UnpublishPost(context context.Context, id string) (*Post, error) {
	return service.mutate(context, "post_unpublished", id, func(p *Post) (bool, error) {
		p.Unpublish()
		return true, nil
	})
}

// DeletePost soft-deletes the post. Repeating it re-stamps the instant.
func (service *Service) DeletePost(context context.Context, id string) (*Post, error) {
	return service.mutate(context, "post_deleted", id, func(p *Post) (bool, error) {
		p.Delete(service.timestamp())
		return true, nil
	})
}

// StarPost toggles the pinned flag.
func (service *Service) StarPost(context context.Context, id string) (*Post, error) {
	return service.mutate(context, "post_starred", id, func(p *Post) (bool, error) {
		p.ToggleStar()
		return true, nil
	})
}
