// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/taibuivan/lingopress/internal/platform/constants"
	"github.com/taibuivan/lingopress/internal/platform/metrics"
	"github.com/taibuivan/lingopress/internal/platform/validate"
	"github.com/taibuivan/lingopress/internal/users/account"
	"github.com/taibuivan/lingopress/pkg/locale"
	"github.com/taibuivan/lingopress/pkg/slice"
)

// Field names used in validation errors.
const (
	FieldLanguage    = "language"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldTags        = "tags"
)

const (
	maxTitleLen       = 300
	maxDescriptionLen = 1000
	maxTags           = 32
	maxTagLen         = 64
)

// UserLookup resolves the acting user when a post or translation is promoted.
type UserLookup interface {
	FindByID(context context.Context, id string) (*account.User, error)
}

// # Service Layer

// Service runs the post lifecycle and the public queries on top of a [Repository].
type Service struct {
	repository Repository
	users      UserLookup
	cache      PublicCache
	metrics    *metrics.Metrics
	logger     *slog.Logger
	now        func() time.Time
	group      singleflight.Group
}

// Option customises a [Service].
type Option func(*Service)

// WithCache serves public reads through cache.
func WithCache(cache PublicCache) Option {
	return func(service *Service) { service.cache = cache }
}

// WithMetrics records mutations, version conflicts and cache lookups.
func WithMetrics(m *metrics.Metrics) Option {
	return func(service *Service) { service.metrics = m }
}

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(service *Service) { service.now = now }
}

// NewService constructs a new [Service].
func NewService(repository Repository, users UserLookup, logger *slog.Logger, opts ...Option) *Service {
	service := &Service{
		repository: repository,
		users:      users,
		cache:      NoopCache{},
		metrics:    metrics.Noop(),
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// timestamp is the current instant at the resolution the stores keep.
func (service *Service) timestamp() time.Time {
	return service.now().UTC().Truncate(time.Millisecond)
}

// # Read-Modify-Write

// mutation edits a loaded aggregate. It reports whether anything changed.
type mutation func(p *Post) (bool, error)

/*
mutate loads the post, applies fn and commits with a version check.

On a version conflict the whole cycle is re-run, up to
[constants.MaxWriteAttempts] times, before failing with ErrConcurrentUpdate.
Unchanged aggregates are returned without a write.
*/
func (service *Service) mutate(context context.Context, operation, id string, fn mutation) (p *Post, err error) {
	defer func() {
		service.metrics.RecordMutation(context, operation, statusOf(err))
	}()

	for attempt := 1; ; attempt++ {
		p, err = service.repository.FindByID(context, id)
		if err != nil {
			return nil, err
		}

		var changed bool
		if changed, err = fn(p); err != nil {
			return nil, err
		}
		if !changed {
			return p, nil
		}

		err = service.repository.Save(context, p)
		if errors.Is(err, ErrVersionConflict) {
			service.metrics.RecordVersionConflict(context, operation)
			service.logger.WarnContext(context, "post_version_conflict",
				slog.String("post_id", id),
				slog.String("operation", operation),
				slog.Int("attempt", attempt),
			)
			if attempt < constants.MaxWriteAttempts {
				continue
			}
			return nil, ErrConcurrentUpdate
		}
		if err != nil {
			return nil, err
		}

		service.invalidate(context)
		service.logger.InfoContext(context, operation,
			slog.String("post_id", id),
			slog.Int("version", p.Version),
		)
		return p, nil
	}
}

func (service *Service) invalidate(context context.Context) {
	if err := service.cache.Invalidate(context); err != nil {
		service.logger.WarnContext(context, "public_cache_invalidate_failed", slog.Any("error", err))
	}
}

// authorResolver returns a lookup that hits the user store at most once, so
// retried mutations reuse the first answer.
func (service *Service) authorResolver(userID string) func(context.Context) (*Author, error) {
	var author *Author
	return func(context context.Context) (*Author, error) {
		if author != nil {
			return author, nil
		}
		user, err := service.users.FindByID(context, userID)
		if err != nil {
			return nil, err
		}
		author = &Author{ID: user.ID, Name: user.DisplayName()}
		return author, nil
	}
}

// # Input Normalisation

// normalizeContent trims and validates content. The language is
// canonicalised; an empty language is only accepted when languageOptional.
func normalizeContent(content Content, languageOptional bool) (Content, error) {
	content.Language = strings.TrimSpace(content.Language)
	content.Title = strings.TrimSpace(content.Title)
	content.Description = strings.TrimSpace(content.Description)
	content.Tags = slice.Map(content.Tags, strings.TrimSpace)

	v := &validate.Validator{}
	if !languageOptional {
		v.Required(FieldLanguage, content.Language)
	}
	v.Language(FieldLanguage, content.Language, true).
		MaxLen(FieldTitle, content.Title, maxTitleLen).
		MaxLen(FieldDescription, content.Description, maxDescriptionLen).
		Custom(FieldTags, len(content.Tags) > maxTags, "Too many tags").
		Each(FieldTags, content.Tags, func(v *validate.Validator, field, value string) {
			v.Required(field, value).MaxLen(field, value, maxTagLen)
		})
	if err := v.Err(); err != nil {
		return Content{}, err
	}

	if content.Language != "" {
		content.Language, _ = locale.Canonical(content.Language)
	}
	content.Tags = slice.Unique(content.Tags)
	if content.Tags == nil {
		content.Tags = []string{}
	}
	return content, nil
}

// normalizeLanguage canonicalises a required language path argument.
func normalizeLanguage(language string) (string, error) {
	canonical, err := locale.Canonical(language)
	if err != nil {
		if errors.Is(err, locale.ErrEmpty) {
			return "", validate.RequiredError(FieldLanguage, "This field is required")
		}
		return "", validate.RequiredError(FieldLanguage, "Must be a valid language tag (e.g. en, es-AR)")
	}
	return canonical, nil
}
