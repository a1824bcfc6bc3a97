// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns of the relational store, so SQL
// built with fmt.Sprintf stays in sync with the migrations.
package schema

// ContentPostTable represents the 'content.post' table
type ContentPostTable struct {
	Table        string
	ID           string
	Language     string
	Title        string
	Description  string
	Body         string
	Tags         string
	Author       string
	CreatedAt    string
	UpdatedAt    string
	PublishedAt  string
	Translations string
	DeletedAt    string
	Starred      string
	Version      string
}

// ContentPost is the schema definition for content.post
var ContentPost = ContentPostTable{
	Table:        "content.post",
	ID:           "id",
	Language:     "language",
	Title:        "title",
	Description:  "description",
	Body:         "body",
	Tags:         "tags",
	Author:       "author",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
	PublishedAt:  "publishedat",
	Translations: "translations",
	DeletedAt:    "deletedat",
	Starred:      "starred",
	Version:      "version",
}

// Columns returns all standard column names in scan order
func (t ContentPostTable) Columns() []string {
	return []string{
		t.ID, t.Language, t.Title, t.Description, t.Body, t.Tags, t.Author,
		t.CreatedAt, t.UpdatedAt, t.PublishedAt, t.Translations,
		t.DeletedAt, t.Starred, t.Version,
	}
}
