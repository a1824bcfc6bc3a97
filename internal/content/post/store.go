// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"strings"
)

// # Queries

// Presence filters on whether an optional instant is set.
type Presence int

const (
	Any Presence = iota
	Absent
	Present
)

func (presence Presence) matches(set bool) bool {
	switch presence {
	case Absent:
		return !set
	case Present:
		return set
	default:
		return true
	}
}

// Query selects posts for listing. The zero value matches everything.
type Query struct {
	Created Presence
	Deleted Presence

	// Starred filters on the pinned flag when non-nil.
	Starred *bool

	// Public keeps only posts that pass [Post.Qualifies].
	Public bool

	// Skip and Take window the ordered result; Take 0 means no limit.
	Skip int
	Take int
}

// Matches reports whether p satisfies the filter part of q.
func (q Query) Matches(p *Post) bool {
	if !q.Created.matches(p.Created != nil) || !q.Deleted.matches(p.Deleted != nil) {
		return false
	}
	if q.Starred != nil && p.Starred != *q.Starred {
		return false
	}
	if q.Public && !p.Qualifies() {
		return false
	}
	return true
}

// Before is the listing order: primary publish instant newest first with
// unpublished posts last, then id descending.
func Before(a, b *Post) bool {
	switch {
	case a.Published != nil && b.Published == nil:
		return true
	case a.Published == nil && b.Published != nil:
		return false
	case a.Published != nil && !a.Published.Equal(*b.Published):
		return a.Published.After(*b.Published)
	}
	return strings.Compare(a.ID, b.ID) > 0
}

// # Repository Contracts

// Repository is the document store behind the post engine.
type Repository interface {
	/*
		FindByID loads one aggregate, translations included.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Post: The stored aggregate with its current Version
		  - error: ErrNotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*Post, error)

	/*
		FindMany lists posts matching the query in [Before] order.

		Returns:
		  - []*Post: The requested window, never nil
		  - int: Total matches ignoring the window
		  - error: Storage failures
	*/
	FindMany(context context.Context, query Query) ([]*Post, int, error)

	/*
		Insert stores a new aggregate at version 1 and updates p.Version.

		Returns:
		  - error: apperr.Conflict on a duplicate id
	*/
	Insert(context context.Context, p *Post) error

	/*
		Save replaces the aggregate if its stored version still equals p.Version,
		then increments p.Version.

		Returns:
		  - error: ErrNotFound, ErrVersionConflict or storage failures
	*/
	Save(context context.Context, p *Post) error
}
