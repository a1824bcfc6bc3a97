// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/lingopress/internal/platform/database/schema"
	"github.com/taibuivan/lingopress/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on content.post. Translations
// and the author snapshot are stored as JSONB.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres post repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var selectPost = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.ContentPost.Columns(), ", "), schema.ContentPost.Table,
)

func scanPost(row pgx.Row) (*Post, error) {
	var (
		p            = &Post{}
		author       []byte
		translations []byte
	)

	err := row.Scan(
		&p.ID, &p.Language, &p.Title, &p.Description, &p.Body, &p.Tags, &author,
		&p.Created, &p.Updated, &p.Published, &translations,
		&p.Deleted, &p.Starred, &p.Version,
	)
	if err != nil {
		return nil, err
	}

	if len(author) > 0 && string(author) != "null" {
		if err := json.Unmarshal(author, &p.Author); err != nil {
			return nil, fmt.Errorf("decode author: %w", err)
		}
	}

	var list []Translation
	if len(translations) > 0 {
		if err := json.Unmarshal(translations, &list); err != nil {
			return nil, fmt.Errorf("decode translations: %w", err)
		}
	}
	p.Translations = TranslationsFrom(list)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p, nil
}

// encodeJSONB returns the column values for the author and translations.
func encodeJSONB(p *Post) (author any, translations []byte, err error) {
	if p.Author != nil {
		encoded, err := json.Marshal(p.Author)
		if err != nil {
			return nil, nil, err
		}
		author = encoded
	}

	translations, err = json.Marshal(p.Translations.Sorted())
	return author, translations, err
}

func tagsOf(p *Post) []string {
	if p.Tags == nil {
		return []string{}
	}
	return p.Tags
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Post, error) {
	query := selectPost + fmt.Sprintf(` WHERE %s = $1`, schema.ContentPost.ID)

	p, err := scanPost(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, dberr.Wrap(err, "find_post_by_id")
	}
	return p, nil
}

// whereClause translates the filter part of q into SQL.
func whereClause(q Query) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	presence := func(column string, presence Presence) {
		switch presence {
		case Absent:
			clauses = append(clauses, column+" IS NULL")
		case Present:
			clauses = append(clauses, column+" IS NOT NULL")
		}
	}

	presence(schema.ContentPost.CreatedAt, q.Created)
	presence(schema.ContentPost.DeletedAt, q.Deleted)

	if q.Starred != nil {
		args = append(args, *q.Starred)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", schema.ContentPost.Starred, len(args)))
	}

	if q.Public {
		clauses = append(clauses,
			schema.ContentPost.DeletedAt+" IS NULL",
			fmt.Sprintf(`(%s IS NOT NULL OR EXISTS (SELECT 1 FROM jsonb_array_elements(%s) t WHERE t->>'published' IS NOT NULL))`,
				schema.ContentPost.PublishedAt, schema.ContentPost.Translations),
		)
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (repository *PostgresRepository) FindMany(context context.Context, q Query) ([]*Post, int, error) {
	where, args := whereClause(q)

	pageQuery := selectPost + where + fmt.Sprintf(` ORDER BY %s DESC NULLS LAST, %s DESC`,
		schema.ContentPost.PublishedAt, schema.ContentPost.ID)
	pageArgs := append([]any(nil), args...)
	if q.Take > 0 {
		pageArgs = append(pageArgs, q.Take)
		pageQuery += fmt.Sprintf(` LIMIT $%d`, len(pageArgs))
	}
	if q.Skip > 0 {
		pageArgs = append(pageArgs, q.Skip)
		pageQuery += fmt.Sprintf(` OFFSET $%d`, len(pageArgs))
	}
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, schema.ContentPost.Table, where)

	batch := &pgx.Batch{}
	batch.Queue(pageQuery, pageArgs...)
	batch.Queue(countQuery, args...)

	results := repository.pool.SendBatch(context, batch)
	defer results.Close()

	rows, err := results.Query()
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_posts")
	}

	posts := make([]*Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			rows.Close()
			return nil, 0, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_posts")
	}

	var total int
	if err := results.QueryRow().Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_posts")
	}

	return posts, total, nil
}

func (repository *PostgresRepository) Insert(context context.Context, p *Post) error {
	author, translations, err := encodeJSONB(p)
	if err != nil {
		return fmt.Errorf("encode post: %w", err)
	}

	columns := schema.ContentPost.Columns()
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		schema.ContentPost.Table, strings.Join(columns, ", "), strings.Join(placeholders, ", "),
	)

	_, err = repository.pool.Exec(context, query,
		p.ID, p.Language, p.Title, p.Description, p.Body, tagsOf(p), author,
		p.Created, p.Updated, p.Published, translations,
		p.Deleted, p.Starred, 1,
	)
	if err != nil {
		return dberr.Wrap(err, "insert_post")
	}

	p.Version = 1
	return nil
}

func (repository *PostgresRepository) Save(context context.Context, p *Post) error {
	author, translations, err := encodeJSONB(p)
	if err != nil {
		return fmt.Errorf("encode post: %w", err)
	}

	c := schema.ContentPost
	query := fmt.Sprintf(`UPDATE %s SET
		%s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
		%s = $9, %s = $10, %s = $11, %s = $12, %s = $13, %s = $14,
		%s = %s + 1
		WHERE %s = $1 AND %s = $2`,
		c.Table,
		c.Language, c.Title, c.Description, c.Body, c.Tags, c.Author,
		c.CreatedAt, c.UpdatedAt, c.PublishedAt, c.Translations, c.DeletedAt, c.Starred,
		c.Version, c.Version,
		c.ID, c.Version,
	)

	tag, err := repository.pool.Exec(context, query,
		p.ID, p.Version,
		p.Language, p.Title, p.Description, p.Body, tagsOf(p), author,
		p.Created, p.Updated, p.Published, translations, p.Deleted, p.Starred,
	)
	if err != nil {
		return dberr.Wrap(err, "save_post")
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		check := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, c.Table, c.ID)
		if err := repository.pool.QueryRow(context, check, p.ID).Scan(&exists); err != nil {
			return dberr.Wrap(err, "save_post")
		}
		if !exists {
			return ErrNotFound
		}
		return ErrVersionConflict
	}

	p.Version++
	return nil
}
