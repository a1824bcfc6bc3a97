// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ContentTagTable represents the 'content.tag' table
type ContentTagTable struct {
	Table     string
	ID        string
	Locale    string
	Tag       string
	CreatedAt string
}

// ContentTag is the schema definition for content.tag
var ContentTag = ContentTagTable{
	Table:     "content.tag",
	ID:        "id",
	Locale:    "locale",
	Tag:       "tag",
	CreatedAt: "createdat",
}

func (t ContentTagTable) Columns() []string {
	return []string{t.ID, t.Locale, t.Tag}
}
