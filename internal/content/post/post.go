// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package post implements the multilingual post lifecycle and its public visibility rules.

A post carries one primary-language payload plus any number of translations,
each with its own draft/publish/author state. Soft deletion and the starred
(pinned) flag apply to the whole aggregate and decide what anonymous readers
may see.

# Architecture

  - Aggregate: [Post], [Translation], [Translations] (keyed by language).
  - Visibility: [ToPublicView] and [PinnedPathsOf], pure functions.
  - Lifecycle & Query: [Service], optimistic read-modify-write over [Repository].
  - Storage: Postgres (JSONB), MongoDB and in-memory repositories.
  - Transport: author routes and public routes.
*/
package post

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/taibuivan/lingopress/pkg/pointer"
	"github.com/taibuivan/lingopress/pkg/slice"
)

// # Domain Entities

// Author is the snapshot of a user stamped on a promoted post or translation.
type Author struct {
	ID   string `json:"id"   bson:"id"`
	Name string `json:"name" bson:"name"`
}

// Translation is one language variant of a post. The primary variant is
// embedded in [Post]; secondary variants live in [Post.Translations].
//
// Nil instants mean the stage has not been reached yet.
type Translation struct {
	Language    string     `json:"language"            bson:"language"`
	Title       string     `json:"title"               bson:"title"`
	Description string     `json:"description"         bson:"description"`
	Body        string     `json:"body"                bson:"body"`
	Tags        []string   `json:"tags"                bson:"tags"`
	Author      *Author    `json:"author,omitempty"    bson:"author,omitempty"`
	Created     *time.Time `json:"created,omitempty"   bson:"created,omitempty"`
	Updated     *time.Time `json:"updated,omitempty"   bson:"updated,omitempty"`
	Published   *time.Time `json:"published,omitempty" bson:"published,omitempty"`
}

// IsPublished reports whether the variant is currently published.
func (t *Translation) IsPublished() bool {
	return t.Published != nil
}

// setContent overwrites the editable fields.
func (t *Translation) setContent(content Content) {
	t.Title = content.Title
	t.Description = content.Description
	t.Body = content.Body
	t.Tags = content.Tags
}

// promote stamps author and timestamps. created is only set the first time.
func (t *Translation) promote(author *Author, now time.Time) {
	t.Author = author
	if t.Created == nil {
		t.Created = pointer.To(now)
	}
	t.Updated = pointer.To(now)
}

func (t Translation) clone() Translation {
	c := t
	c.Tags = append([]string(nil), t.Tags...)
	if t.Author != nil {
		c.Author = pointer.To(*t.Author)
	}
	c.Created = pointer.Clone(t.Created)
	c.Updated = pointer.Clone(t.Updated)
	c.Published = pointer.Clone(t.Published)
	return c
}

// Translations holds secondary variants keyed by canonical language tag.
// It serialises as an array ordered by language.
type Translations map[string]*Translation

// Sorted returns the variants ordered by language tag.
func (ts Translations) Sorted() []Translation {
	keys := make([]string, 0, len(ts))
	for k := range ts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	list := make([]Translation, 0, len(keys))
	for _, k := range keys {
		list = append(list, *ts[k])
	}
	return list
}

// TranslationsFrom indexes a list by language. Later duplicates win.
func TranslationsFrom(list []Translation) Translations {
	ts := make(Translations, len(list))
	for i := range list {
		t := list[i]
		ts[t.Language] = &t
	}
	return ts
}

func (ts Translations) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.Sorted())
}

func (ts *Translations) UnmarshalJSON(data []byte) error {
	var list []Translation
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*ts = TranslationsFrom(list)
	return nil
}

// Post is the aggregate root.
type Post struct {
	ID string `json:"id"`

	// Primary variant
	Translation

	Translations Translations `json:"translations"`
	Deleted      *time.Time   `json:"deleted,omitempty"`
	Starred      bool         `json:"starred"`

	// Version increments on every stored write; see [Repository.Save].
	Version int `json:"version"`
}

// Content is the editable payload shared by the primary variant and translations.
type Content struct {
	Language    string
	Title       string
	Description string
	Body        string
	Tags        []string
}

// New returns an empty draft with the given id.
func New(id string) *Post {
	return &Post{
		ID:           id,
		Translation:  Translation{Tags: []string{}},
		Translations: Translations{},
	}
}

// # State

// IsDraft reports whether the post has never been saved as a post.
func (p *Post) IsDraft() bool {
	return p.Created == nil
}

// IsDeleted reports whether the post has been soft-deleted.
func (p *Post) IsDeleted() bool {
	return p.Deleted != nil
}

// Qualifies reports whether the post may appear in public listings: not
// deleted, and either the primary variant or a translation is published.
func (p *Post) Qualifies() bool {
	if p.IsDeleted() {
		return false
	}
	if p.IsPublished() {
		return true
	}
	for _, t := range p.Translations {
		if t.IsPublished() {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (p *Post) Clone() *Post {
	c := &Post{
		ID:           p.ID,
		Translation:  p.Translation.clone(),
		Translations: make(Translations, len(p.Translations)),
		Deleted:      pointer.Clone(p.Deleted),
		Starred:      p.Starred,
		Version:      p.Version,
	}
	for k, t := range p.Translations {
		tc := t.clone()
		c.Translations[k] = &tc
	}
	return c
}

// # Primary Mutations

// SaveDraft overwrites the primary content, language included.
func (p *Post) SaveDraft(content Content) error {
	if err := p.checkPrimaryLanguage(content.Language); err != nil {
		return err
	}
	p.Language = content.Language
	p.setContent(content)
	return nil
}

// SavePost overwrites the primary content and promotes the post. The primary
// language is only taken from content while it is still unset.
func (p *Post) SavePost(content Content, author *Author, now time.Time) error {
	if p.Language == "" {
		if err := p.checkPrimaryLanguage(content.Language); err != nil {
			return err
		}
		p.Language = content.Language
	}
	p.setContent(content)
	p.promote(author, now)
	return nil
}

// Publish sets the primary publish instant. Drafts and deleted posts are
// reported as [ErrNotFound].
func (p *Post) Publish(now time.Time) error {
	if p.IsDraft() || p.IsDeleted() {
		return ErrNotFound
	}
	p.Published = pointer.To(now)
	return nil
}

// Unpublish clears the primary publish instant.
func (p *Post) Unpublish() {
	p.Published = nil
}

// Delete stamps the soft-delete instant.
func (p *Post) Delete(now time.Time) {
	p.Deleted = pointer.To(now)
}

// ToggleStar flips the pinned flag.
func (p *Post) ToggleStar() {
	p.Starred = !p.Starred
}

func (p *Post) checkPrimaryLanguage(language string) error {
	if _, taken := p.Translations[language]; taken && language != "" {
		return ErrSameLanguage
	}
	return nil
}

// # Translation Mutations

// AddTranslation appends an empty variant. It reports false when the
// language already exists.
func (p *Post) AddTranslation(language string) (bool, error) {
	if language == p.Language {
		return false, ErrSameLanguage
	}
	if _, exists := p.Translations[language]; exists {
		return false, nil
	}
	p.ensureTranslations()
	p.Translations[language] = &Translation{Language: language, Tags: []string{}}
	return true, nil
}

// DeleteTranslation removes a variant permanently. It reports false when
// there was nothing to remove.
func (p *Post) DeleteTranslation(language string) bool {
	if _, exists := p.Translations[language]; !exists {
		return false
	}
	delete(p.Translations, language)
	return true
}

// SaveTranslationDraft upserts a variant's content. Author, timestamps and
// publish state of an existing variant are kept.
func (p *Post) SaveTranslationDraft(language string, content Content) error {
	t, err := p.upsertTranslation(language)
	if err != nil {
		return err
	}
	t.setContent(content)
	return nil
}

// SaveTranslationPost upserts a variant's content and promotes it.
func (p *Post) SaveTranslationPost(language string, content Content, author *Author, now time.Time) error {
	t, err := p.upsertTranslation(language)
	if err != nil {
		return err
	}
	t.setContent(content)
	t.promote(author, now)
	return nil
}

// PublishTranslation sets a variant's publish instant.
func (p *Post) PublishTranslation(language string, now time.Time) error {
	t, exists := p.Translations[language]
	if !exists {
		return ErrTranslationNotFound
	}
	t.Published = pointer.To(now)
	return nil
}

// UnpublishTranslation clears a variant's publish instant.
func (p *Post) UnpublishTranslation(language string) error {
	t, exists := p.Translations[language]
	if !exists {
		return ErrTranslationNotFound
	}
	t.Published = nil
	return nil
}

func (p *Post) upsertTranslation(language string) (*Translation, error) {
	if language == p.Language {
		return nil, ErrSameLanguage
	}
	if t, exists := p.Translations[language]; exists {
		return t, nil
	}
	p.ensureTranslations()
	t := &Translation{Language: language, Tags: []string{}}
	p.Translations[language] = t
	return t, nil
}

func (p *Post) ensureTranslations() {
	if p.Translations == nil {
		p.Translations = Translations{}
	}
}

// Languages lists the primary language (when set) followed by the translation languages.
func (p *Post) Languages() []string {
	languages := make([]string, 0, len(p.Translations)+1)
	if p.Language != "" {
		languages = append(languages, p.Language)
	}
	return append(languages, slice.Map(p.Translations.Sorted(), func(t Translation) string { return t.Language })...)
}
