// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/lingopress/internal/platform/database/schema"
	"github.com/taibuivan/lingopress/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context, locale string) ([]*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.ContentTag.ID, schema.ContentTag.Locale, schema.ContentTag.Tag, schema.ContentTag.CreatedAt,
		schema.ContentTag.Table, schema.ContentTag.Locale, schema.ContentTag.Tag)

	rows, err := repository.db.Query(context, query, locale)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Locale, &t.Tag, &t.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}

	return tags, dberr.Wrap(rows.Err(), "list_tags")
}

func (repository *PostgresRepository) Add(context context.Context, tag *Tag) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) ON CONFLICT (%s, %s) DO NOTHING`,
		schema.ContentTag.Table,
		schema.ContentTag.ID, schema.ContentTag.Locale, schema.ContentTag.Tag, schema.ContentTag.CreatedAt,
		schema.ContentTag.Locale, schema.ContentTag.Tag)

	_, err := repository.db.Exec(context, query, tag.ID, tag.Locale, tag.Tag, tag.CreatedAt)
	return dberr.Wrap(err, "add_tag")
}

func (repository *PostgresRepository) Remove(context context.Context, locale, tag string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.ContentTag.Table, schema.ContentTag.Locale, schema.ContentTag.Tag)

	_, err := repository.db.Exec(context, query, locale, tag)
	return dberr.Wrap(err, "remove_tag")
}
