// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lingopress/internal/content/tag"
	"github.com/taibuivan/lingopress/internal/platform/apperr"
)

func newService() *tag.Service {
	return tag.NewService(tag.NewMemoryRepository(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func names(tags []*tag.Tag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Tag)
	}
	return out
}

func TestAddTag_IdempotentAndPerLocale(t *testing.T) {
	service := newService()
	ctx := context.Background()

	_, err := service.AddTag(ctx, "en", "go")
	require.NoError(t, err)
	_, err = service.AddTag(ctx, "en", "cms")
	require.NoError(t, err)
	tags, err := service.AddTag(ctx, "EN", " go ")
	require.NoError(t, err)

	assert.Equal(t, []string{"cms", "go"}, names(tags))
	assert.Equal(t, "en", tags[0].Locale)

	es, err := service.AllTags(ctx, "es")
	require.NoError(t, err)
	assert.Empty(t, es)
}

func TestRemoveTag(t *testing.T) {
	service := newService()
	ctx := context.Background()

	_, err := service.AddTag(ctx, "es-AR", "mate")
	require.NoError(t, err)
	_, err = service.AddTag(ctx, "es-AR", "asado")
	require.NoError(t, err)

	tags, err := service.RemoveTag(ctx, "es_ar", "mate")
	require.NoError(t, err)
	assert.Equal(t, []string{"asado"}, names(tags))

	tags, err = service.RemoveTag(ctx, "es-AR", "mate")
	require.NoError(t, err, "removing a missing tag is a no-op")
	assert.Equal(t, []string{"asado"}, names(tags))
}

func TestTag_Rejects(t *testing.T) {
	service := newService()
	ctx := context.Background()

	tests := []struct {
		name   string
		locale string
		tag    string
		key    string
	}{
		{"blank_tag", "en", "  ", "errors.tags.invalid_tag"},
		{"long_tag", "en", strings.Repeat("x", 65), "errors.tags.invalid_tag"},
		{"bad_locale", "???", "go", "errors.validation_failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.AddTag(ctx, tt.locale, tt.tag)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			assert.Equal(t, tt.key, appErr.Key)
		})
	}
}
