// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import "context"

// # Translation Lifecycle

/*
AddTranslation adds an empty translation in language.

Description: Adding a language that already exists returns the post
unchanged without writing.

Returns:
  - *Post: The aggregate
  - error: ErrNotFound, ErrSameLanguage or validation errors
*/
func (service *Service) AddTranslation(context context.Context, id, language string) (*Post, error) {
	language, err := normalizeLanguage(language)
	if err != nil {
		return nil, err
	}

	return service.mutate(context, "translation_added", id, func(p *Post) (bool, error) {
		return p.AddTranslation(language)
	})
}

// DeleteTranslation removes a translation permanently. A missing language is a no-op.
func (service *Service) DeleteTranslation(context context.Context, id, language string) (*Post, error) {
	language, err := normalizeLanguage(language)
	if err != nil {
		return nil, err
	}

	return service.mutate(context, "translation_deleted", id, func(p *Post) (bool, error) {
		return p.DeleteTranslation(language), nil
	})
}

/*
SaveTranslationDraft creates or overwrites a translation's content. The
language comes from the path; content.Language is ignored.

Returns:
  - *Post: The updated aggregate
  - error: ErrNotFound, ErrSameLanguage or validation errors
*/
func (service *Service) SaveTranslationDraft(context context.Context, id, language string, content Content) (*Post, error) {
	language, content, err := normalizeTranslation(language, content)
	if err != nil {
		return nil, err
	}

	return service.mutate(context, "translation_draft_saved", id, func(p *Post) (bool, error) {
		return true, p.SaveTranslationDraft(language, content)
	})
}

/*
SaveTranslationPost creates or overwrites a translation and promotes it on
behalf of userID. An existing created instant is kept.

Returns:
  - *Post: The updated aggregate
  - error: ErrNotFound, account.ErrUserNotFound, ErrSameLanguage or validation errors
*/
func (service *Service) SaveTranslationPost(context context.Context, id, language string, content Content, userID string) (*Post, error) {
	language, content, err := normalizeTranslation(language, content)
	if err != nil {
		return nil, err
	}

	author := service.authorResolver(userID)
	return service.mutate(context, "translation_saved", id, func(p *Post) (bool, error) {
		a, err := author(context)
		if err != nil {
			return false, err
		}
		return true, p.SaveTranslationPost(language, content, a, service.timestamp())
	})
}

// PublishTranslationPost publishes one translation.
func (service *Service) PublishTranslationPost(context context.Context, id, language string) (*Post, error) {
	language, err := normalizeLanguage(language)
	if err != nil {
		return nil, err
	}

	return service.mutate(context, "translation_published", id, func(p *Post) (bool, error) {
		return true, p.PublishTranslation(language, service.timestamp())
	})
}

// UnpublishTranslationPost clears one translation's publish instant.
func (service *Service) UnpublishTranslationPost(context context.Context, id, language string) (*Post, error) {
	language, err := normalizeLanguage(language)
	if err != nil {
		return nil, err
	}

	return service.mutate(context, "translation_unpublished", id, func(p *Post) (bool, error) {
		return true, p.UnpublishTranslation(language)
	})
}

func normalizeTranslation(language string, content Content) (string, Content, error) {
	language, err := normalizeLanguage(language)
	if err != nil {
		return "", Content{}, err
	}

	content.Language = ""
	content, err = normalizeContent(content, true)
	if err != nil {
		return "", Content{}, err
	}
	content.Language = language
	return language, content, nil
}
