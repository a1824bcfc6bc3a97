// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"github.com/taibuivan/lingopress/pkg/slice"
	"github.com/taibuivan/lingopress/pkg/slug"
)

// # Public Views

// PublicPost is what anonymous readers see. Content is only reachable through
// published translations; the primary fields stay internal.
type PublicPost struct {
	ID           string        `json:"id"`
	Starred      bool          `json:"starred"`
	Translations []Translation `json:"translations"`
}

// PinnedTitle is one localised entry of a [PinnedPath].
type PinnedTitle struct {
	LocaleID string `json:"localeId"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
}

// PinnedPath lists the titles a pinned post can be linked under.
type PinnedPath struct {
	ID     string        `json:"id"`
	Titles []PinnedTitle `json:"titles"`
}

// ToPublicView projects p for public consumption. It reports false when p is
// deleted or has nothing published.
func ToPublicView(p *Post) (PublicPost, bool) {
	if p == nil || !p.Qualifies() {
		return PublicPost{}, false
	}

	published := slice.Filter(p.Translations.Sorted(), func(t Translation) bool { return t.IsPublished() })

	return PublicPost{
		ID:           p.ID,
		Starred:      p.Starred,
		Translations: published,
	}, true
}

// PinnedPathsOf builds the link titles for p from the primary variant and its
// published translations. Entries missing a language or title are skipped;
// titles that produce no slug are linked by id.
func PinnedPathsOf(p *Post) PinnedPath {
	path := PinnedPath{ID: p.ID, Titles: make([]PinnedTitle, 0, len(p.Translations)+1)}

	add := func(language, title string) {
		if language == "" || title == "" {
			return
		}
		s := slug.From(title)
		if s == "" {
			s = p.ID
		}
		path.Titles = append(path.Titles, PinnedTitle{LocaleID: language, Title: title, Slug: s})
	}

	add(p.Language, p.Title)
	for _, t := range p.Translations.Sorted() {
		if t.IsPublished() {
			add(t.Language, t.Title)
		}
	}

	return path
}
