// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lingopress/internal/content/post"
	"github.com/taibuivan/lingopress/internal/platform/constants"
	"github.com/taibuivan/lingopress/internal/platform/database/schema"
	"github.com/taibuivan/lingopress/internal/platform/testenv"
	"github.com/taibuivan/lingopress/pkg/pointer"
	"github.com/taibuivan/lingopress/pkg/uuid"
)

func TestMemoryRepository(t *testing.T) {
	testRepository(t, post.NewMemoryRepository())
}

func TestPostgresRepository(t *testing.T) {
	pool := testenv.Postgres(t, schema.ContentPost.Table)
	testRepository(t, post.NewPostgresRepository(pool))
}

func TestMongoRepository(t *testing.T) {
	db := testenv.Mongo(t, constants.CollectionPosts)
	testRepository(t, post.NewMongoRepository(db))
}

// seed inserts a post and applies edit through Save.
func seed(t *testing.T, repo post.Repository, edit func(p *post.Post)) *post.Post {
	t.Helper()
	ctx := context.Background()

	p := post.New(uuid.New())
	require.NoError(t, repo.Insert(ctx, p))
	if edit != nil {
		edit(p)
		require.NoError(t, repo.Save(ctx, p))
	}
	return p
}

func listIDs(posts []*post.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

/*
testRepository is the behaviour every [post.Repository] must share.
*/
func testRepository(t *testing.T, repo post.Repository) {
	ctx := context.Background()
	at := func(minutes int) time.Time { return epoch.Add(time.Duration(minutes) * time.Minute) }

	t.Run("round_trip", func(t *testing.T) {
		p := seed(t, repo, func(p *post.Post) {
			require.NoError(t, p.SavePost(post.Content{
				Language: "en", Title: "T", Description: "D", Body: "B", Tags: []string{"a", "b"},
			}, &post.Author{ID: "u1", Name: "Ana"}, at(0)))
			require.NoError(t, p.SaveTranslationPost("es", post.Content{Title: "T-es", Tags: []string{"c"}}, &post.Author{ID: "u2", Name: "Bea"}, at(1)))
			require.NoError(t, p.PublishTranslation("es", at(2)))
			_, err := p.AddTranslation("fr")
			require.NoError(t, err)
		})

		got, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)

		assert.Equal(t, 2, got.Version)
		assert.Equal(t, "en", got.Language)
		assert.Equal(t, []string{"a", "b"}, got.Tags)
		assert.Equal(t, &post.Author{ID: "u1", Name: "Ana"}, got.Author)
		assert.True(t, at(0).Equal(*got.Created))
		assert.Nil(t, got.Published)
		assert.Nil(t, got.Deleted)

		require.Len(t, got.Translations, 2)
		es := got.Translations["es"]
		assert.Equal(t, "T-es", es.Title)
		assert.Equal(t, []string{"c"}, es.Tags)
		assert.True(t, at(2).Equal(*es.Published))
		fr := got.Translations["fr"]
		assert.Nil(t, fr.Published)
		assert.Nil(t, fr.Author)
		assert.Empty(t, fr.Tags)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, post.ErrNotFound)

		err = repo.Save(ctx, post.New(uuid.New()))
		assert.ErrorIs(t, err, post.ErrNotFound)
	})

	t.Run("version_check", func(t *testing.T) {
		p := seed(t, repo, nil)
		stale := p.Clone()

		p.ToggleStar()
		require.NoError(t, repo.Save(ctx, p))
		assert.Equal(t, 2, p.Version)

		stale.Title = "lost"
		assert.ErrorIs(t, repo.Save(ctx, stale), post.ErrVersionConflict)

		got, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, got.Starred)
		assert.Empty(t, got.Title)
	})

	t.Run("find_many", func(t *testing.T) {
		draft := seed(t, repo, nil)
		unpublished := seed(t, repo, func(p *post.Post) {
			require.NoError(t, p.SavePost(post.Content{Language: "en"}, nil, at(0)))
		})
		older := seed(t, repo, func(p *post.Post) {
			require.NoError(t, p.SavePost(post.Content{Language: "en"}, nil, at(0)))
			require.NoError(t, p.Publish(at(10)))
		})
		newer := seed(t, repo, func(p *post.Post) {
			require.NoError(t, p.SavePost(post.Content{Language: "en"}, nil, at(0)))
			require.NoError(t, p.Publish(at(20)))
		})
		translated := seed(t, repo, func(p *post.Post) {
			require.NoError(t, p.SavePost(post.Content{Language: "en"}, nil, at(0)))
			require.NoError(t, p.SaveTranslationDraft("es", post.Content{Title: "x"}))
			require.NoError(t, p.PublishTranslation("es", at(30)))
		})
		pinned := seed(t, repo, func(p *post.Post) {
			require.NoError(t, p.SavePost(post.Content{Language: "en"}, nil, at(0)))
			require.NoError(t, p.Publish(at(5)))
			p.ToggleStar()
		})
		deleted := seed(t, repo, func(p *post.Post) {
			require.NoError(t, p.SavePost(post.Content{Language: "en"}, nil, at(0)))
			require.NoError(t, p.Publish(at(40)))
			p.Delete(at(41))
		})

		ours := map[string]bool{}
		for _, p := range []*post.Post{draft, unpublished, older, newer, translated, pinned, deleted} {
			ours[p.ID] = true
		}
		only := func(ids []string) []string {
			kept := make([]string, 0, len(ids))
			for _, id := range ids {
				if ours[id] {
					kept = append(kept, id)
				}
			}
			return kept
		}

		tests := []struct {
			name    string
			query   post.Query
			want    []string
			ordered bool
		}{
			// Unpublished primaries sort last
			{"public_general", post.Query{Public: true, Starred: pointer.To(false)},
				[]string{newer.ID, older.ID, translated.ID}, true},
			{"public_pinned", post.Query{Public: true, Starred: pointer.To(true)},
				[]string{pinned.ID}, true},
			{"drafts", post.Query{Created: post.Absent, Deleted: post.Absent},
				[]string{draft.ID}, false},
			{"promoted", post.Query{Created: post.Present, Deleted: post.Absent},
				[]string{unpublished.ID, older.ID, newer.ID, translated.ID, pinned.ID}, false},
			{"deleted", post.Query{Deleted: post.Present},
				[]string{deleted.ID}, false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				posts, total, err := repo.FindMany(ctx, tt.query)
				require.NoError(t, err)
				assert.Equal(t, len(posts), total)

				got := only(listIDs(posts))
				if tt.ordered {
					assert.Equal(t, tt.want, got)
				} else {
					assert.ElementsMatch(t, tt.want, got)
				}
			})
		}

		t.Run("window", func(t *testing.T) {
			query := post.Query{Public: true, Starred: pointer.To(false)}
			all, total, err := repo.FindMany(ctx, query)
			require.NoError(t, err)

			query.Skip, query.Take = 1, 1
			page, pageTotal, err := repo.FindMany(ctx, query)
			require.NoError(t, err)

			assert.Equal(t, total, pageTotal)
			require.Len(t, page, 1)
			assert.Equal(t, all[1].ID, page[0].ID)
		})

		t.Run("negative skip starts at the beginning", func(t *testing.T) {
			query := post.Query{Public: true, Starred: pointer.To(false)}
			all, _, err := repo.FindMany(ctx, query)
			require.NoError(t, err)

			query.Skip = -1
			page, _, err := repo.FindMany(ctx, query)
			require.NoError(t, err)
			assert.Equal(t, len(all), len(page))
		})
	})
}
