// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tag keeps the per-locale tag vocabulary authors pick post tags from.
package tag

import (
	"context"
	"time"
)

// Tag is one vocabulary entry, unique per (Locale, Tag).
type Tag struct {
	ID        string    `json:"id"       bson:"_id"`
	Locale    string    `json:"localeId" bson:"locale"`
	Tag       string    `json:"tag"      bson:"tag"`
	CreatedAt time.Time `json:"-"        bson:"created"`
}

// Repository persists the vocabulary.
type Repository interface {
	// List returns a locale's tags ordered alphabetically.
	List(context context.Context, locale string) ([]*Tag, error)

	// Add inserts tag unless the (locale, tag) pair already exists.
	Add(context context.Context, tag *Tag) error

	// Remove deletes the pair if present.
	Remove(context context.Context, locale, tag string) error
}
