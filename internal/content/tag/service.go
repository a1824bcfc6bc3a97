// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/taibuivan/lingopress/internal/platform/validate"
	"github.com/taibuivan/lingopress/pkg/locale"
	"github.com/taibuivan/lingopress/pkg/uuid"
)

const maxTagLen = 64

// ErrInvalidTag rejects blank or overlong tags.
var ErrInvalidTag = validate.RequiredError("tag", fmt.Sprintf("Must be 1 to %d characters", maxTagLen)).
	WithKey("errors.tags.invalid_tag")

// Service manages the per-locale tag vocabulary.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a tag [Service] over the given repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// AllTags lists the vocabulary of one locale.
func (service *Service) AllTags(context context.Context, localeID string) ([]*Tag, error) {
	localeID, err := canonicalLocale(localeID)
	if err != nil {
		return nil, err
	}
	return service.repo.List(context, localeID)
}

// AddTag adds tag to the locale's vocabulary and returns the updated list.
// Adding an existing tag changes nothing.
func (service *Service) AddTag(context context.Context, localeID, tag string) ([]*Tag, error) {
	localeID, tag, err := normalize(localeID, tag)
	if err != nil {
		return nil, err
	}

	entry := &Tag{ID: uuid.New(), Locale: localeID, Tag: tag, CreatedAt: time.Now().UTC()}
	if err := service.repo.Add(context, entry); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "tag_added", slog.String("locale", localeID), slog.String("tag", tag))
	return service.repo.List(context, localeID)
}

// RemoveTag drops tag from the locale's vocabulary and returns the updated list.
func (service *Service) RemoveTag(context context.Context, localeID, tag string) ([]*Tag, error) {
	localeID, tag, err := normalize(localeID, tag)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Remove(context, localeID, tag); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "tag_removed", slog.String("locale", localeID), slog.String("tag", tag))
	return service.repo.List(context, localeID)
}

func canonicalLocale(localeID string) (string, error) {
	canonical, err := locale.Canonical(localeID)
	if err != nil {
		return "", validate.RequiredError("localeId", "Must be a valid language tag (e.g. en, es-AR)")
	}
	return canonical, nil
}

func normalize(localeID, tag string) (string, string, error) {
	localeID, err := canonicalLocale(localeID)
	if err != nil {
		return "", "", err
	}

	tag = strings.TrimSpace(tag)
	if tag == "" || utf8.RuneCountInString(tag) > maxTagLen {
		return "", "", ErrInvalidTag
	}
	return localeID, tag, nil
}
