// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"errors"
	"net/http"

	"github.com/taibuivan/lingopress/internal/platform/apperr"
)

// # Errors

var (
	// ErrNotFound covers missing posts and posts outside the bucket a read asked for.
	ErrNotFound = apperr.NotFound("Post").WithKey("errors.posts.post_not_found")

	// ErrTranslationNotFound is returned when a publish toggle targets a missing language.
	ErrTranslationNotFound = apperr.NotFound("Translation").WithKey("errors.posts.translation_not_found")

	// ErrSameLanguage rejects a translation whose language equals the primary language.
	ErrSameLanguage = apperr.Unprocessable("Cannot add a translation of the same language of the original post").
		WithKey("errors.posts.cant_add_translation_same_language")

	// ErrConcurrentUpdate is surfaced after the write retries are exhausted.
	ErrConcurrentUpdate = apperr.Conflict("The post was modified concurrently, please retry").
		WithKey("errors.posts.concurrent_update")

	// ErrVersionConflict is returned by [Repository.Save] when the stored
	// version moved on since the aggregate was read.
	ErrVersionConflict = errors.New("post: version conflict")
)

// statusOf is used for metrics labels.
func statusOf(err error) string {
	if err == nil {
		return "ok"
	}
	if appErr := apperr.As(err); appErr != nil && appErr.HTTPStatus < http.StatusInternalServerError {
		return "rejected"
	}
	return "error"
}
