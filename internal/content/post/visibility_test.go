// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lingopress/internal/content/post"
	"github.com/taibuivan/lingopress/pkg/pointer"
)

func TestToPublicView_OnlyPublishedTranslations(t *testing.T) {
	p := post.New("p")
	require.NoError(t, p.SavePost(post.Content{Language: "en", Title: "Hello", Body: "secret"}, nil, epoch))
	require.NoError(t, p.SaveTranslationDraft("es", post.Content{Title: "Hola"}))
	require.NoError(t, p.SaveTranslationDraft("fr", post.Content{Title: "Salut"}))
	require.NoError(t, p.PublishTranslation("es", epoch))

	view, ok := post.ToPublicView(p)
	require.True(t, ok)

	assert.Equal(t, "p", view.ID)
	require.Len(t, view.Translations, 1)
	assert.Equal(t, "es", view.Translations[0].Language)
	assert.Equal(t, "Hola", view.Translations[0].Title)
}

func TestToPublicView_Excluded(t *testing.T) {
	deleted := post.New("d")
	deleted.Published = pointer.To(epoch)
	deleted.Starred = true
	deleted.Delete(epoch)

	unpublished := post.New("u")
	require.NoError(t, unpublished.SavePost(post.Content{Language: "en"}, nil, epoch))

	for _, p := range []*post.Post{deleted, unpublished, nil} {
		_, ok := post.ToPublicView(p)
		assert.False(t, ok)
	}
}

func TestPinnedPathsOf(t *testing.T) {
	p := post.New("p")
	require.NoError(t, p.SavePost(post.Content{Language: "en", Title: "Hello World"}, nil, epoch))
	require.NoError(t, p.SaveTranslationDraft("es", post.Content{Title: "Año nuevo"}))
	require.NoError(t, p.SaveTranslationDraft("fr", post.Content{Title: "Pas publié"}))
	require.NoError(t, p.SaveTranslationDraft("de", post.Content{}))
	require.NoError(t, p.SaveTranslationDraft("ja", post.Content{Title: "こんにちは"}))
	require.NoError(t, p.PublishTranslation("ja", epoch))
	require.NoError(t, p.PublishTranslation("es", epoch))
	require.NoError(t, p.PublishTranslation("de", epoch))

	path := post.PinnedPathsOf(p)

	assert.Equal(t, "p", path.ID)
	assert.Equal(t, []post.PinnedTitle{
		{LocaleID: "en", Title: "Hello World", Slug: "hello-world"},
		{LocaleID: "es", Title: "Año nuevo", Slug: "ano-nuevo"},
		{LocaleID: "ja", Title: "こんにちは", Slug: "p"},
	}, path.Titles)
}
