// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lingopress/internal/content/post"
	"github.com/taibuivan/lingopress/pkg/pointer"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestTranslations_JSONOrderedByLanguage(t *testing.T) {
	p := post.New("p1")
	_, err := p.AddTranslation("fr")
	require.NoError(t, err)
	_, err = p.AddTranslation("de")
	require.NoError(t, err)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var shape struct {
		Translations []struct {
			Language string `json:"language"`
		} `json:"translations"`
	}
	require.NoError(t, json.Unmarshal(raw, &shape))
	require.Len(t, shape.Translations, 2)
	assert.Equal(t, "de", shape.Translations[0].Language)
	assert.Equal(t, "fr", shape.Translations[1].Language)

	var decoded post.Post
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded.Translations, "fr")
	assert.Contains(t, decoded.Translations, "de")
}

func TestQualifies(t *testing.T) {
	published := pointer.To(epoch)

	tests := []struct {
		name  string
		build func() *post.Post
		want  bool
	}{
		{"empty_draft", func() *post.Post { return post.New("p") }, false},
		{"primary_published", func() *post.Post {
			p := post.New("p")
			p.Published = published
			return p
		}, true},
		{"translation_published", func() *post.Post {
			p := post.New("p")
			p.Translations["es"] = &post.Translation{Language: "es", Published: published}
			return p
		}, true},
		{"deleted_and_published", func() *post.Post {
			p := post.New("p")
			p.Published = published
			p.Translations["es"] = &post.Translation{Language: "es", Published: published}
			p.Delete(epoch)
			return p
		}, false},
		{"starred_only", func() *post.Post {
			p := post.New("p")
			p.ToggleStar()
			return p
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.build().Qualifies())
		})
	}
}

/*
TestClone_Independent verifies that a clone shares no mutable state.
*/
func TestClone_Independent(t *testing.T) {
	p := post.New("p")
	require.NoError(t, p.SavePost(post.Content{Language: "en", Title: "T", Tags: []string{"x"}}, &post.Author{ID: "u", Name: "Ana"}, epoch))
	require.NoError(t, p.SaveTranslationDraft("es", post.Content{Title: "T-es", Tags: []string{"y"}}))

	c := p.Clone()
	c.Tags[0] = "changed"
	c.Author.Name = "Other"
	*c.Created = epoch.Add(time.Hour)
	c.Translations["es"].Title = "changed"
	delete(c.Translations, "es")

	assert.Equal(t, "x", p.Tags[0])
	assert.Equal(t, "Ana", p.Author.Name)
	assert.Equal(t, epoch, *p.Created)
	require.Contains(t, p.Translations, "es")
	assert.Equal(t, "T-es", p.Translations["es"].Title)
}

func TestPublish_RequiresPromotedLivePost(t *testing.T) {
	p := post.New("p")
	assert.ErrorIs(t, p.Publish(epoch), post.ErrNotFound)

	require.NoError(t, p.SavePost(post.Content{Language: "en"}, nil, epoch))
	require.NoError(t, p.Publish(epoch))
	assert.True(t, p.IsPublished())

	p.Unpublish()
	assert.False(t, p.IsPublished())
	require.NoError(t, p.Publish(epoch), "publish is reversible")

	p.Delete(epoch)
	assert.ErrorIs(t, p.Publish(epoch), post.ErrNotFound)
}

func TestSaveDraft_LanguageTakenByTranslation(t *testing.T) {
	p := post.New("p")
	_, err := p.AddTranslation("es")
	require.NoError(t, err)

	assert.ErrorIs(t, p.SaveDraft(post.Content{Language: "es"}), post.ErrSameLanguage)
	assert.Empty(t, p.Language)
}

func TestSavePost_KeepsPrimaryLanguage(t *testing.T) {
	p := post.New("p")
	require.NoError(t, p.SavePost(post.Content{Language: "en", Title: "one"}, nil, epoch))
	require.NoError(t, p.SavePost(post.Content{Language: "fr", Title: "two"}, nil, epoch.Add(time.Second)))

	assert.Equal(t, "en", p.Language)
	assert.Equal(t, "two", p.Title)
	assert.Equal(t, epoch, *p.Created)
	assert.Equal(t, epoch.Add(time.Second), *p.Updated)
}

func TestLanguages(t *testing.T) {
	p := post.New("p")
	require.NoError(t, p.SaveDraft(post.Content{Language: "en"}))
	_, _ = p.AddTranslation("fr")
	_, _ = p.AddTranslation("es")

	assert.Equal(t, []string{"en", "es", "fr"}, p.Languages())
}
