// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package post

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/lingopress/internal/platform/constants"
	"github.com/taibuivan/lingopress/internal/platform/dberr"
)

// MongoRepository implements [Repository] on the posts collection. Each post
// is one document with its translations stored as an array.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates a new MongoDB post repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(constants.CollectionPosts)}
}

// postDocument is the stored shape of a [Post].
type postDocument struct {
	ID           string        `bson:"_id"`
	Primary      Translation   `bson:",inline"`
	Translations []Translation `bson:"translations"`
	Deleted      *time.Time    `bson:"deleted,omitempty"`
	Starred      bool          `bson:"starred"`
	Version      int           `bson:"version"`
}

func toDocument(p *Post) postDocument {
	primary := p.Translation
	if primary.Tags == nil {
		primary.Tags = []string{}
	}
	return postDocument{
		ID:           p.ID,
		Primary:      primary,
		Translations: p.Translations.Sorted(),
		Deleted:      p.Deleted,
		Starred:      p.Starred,
		Version:      p.Version,
	}
}

func (doc postDocument) toPost() *Post {
	p := &Post{
		ID:           doc.ID,
		Translation:  doc.Primary,
		Translations: TranslationsFrom(doc.Translations),
		Deleted:      doc.Deleted,
		Starred:      doc.Starred,
		Version:      doc.Version,
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	for _, t := range p.Translations {
		if t.Tags == nil {
			t.Tags = []string{}
		}
	}
	return p
}

func (repository *MongoRepository) FindByID(context context.Context, id string) (*Post, error) {
	var doc postDocument
	err := repository.collection.FindOne(context, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, dberr.Wrap(err, "find_post_by_id")
	}
	return doc.toPost(), nil
}

// filterOf translates the filter part of q into a Mongo filter document.
func filterOf(q Query) bson.M {
	filter := bson.M{}

	presence := func(field string, presence Presence) {
		switch presence {
		case Absent:
			filter[field] = nil
		case Present:
			filter[field] = bson.M{"$ne": nil}
		}
	}

	presence("created", q.Created)
	presence("deleted", q.Deleted)

	if q.Starred != nil {
		if *q.Starred {
			filter["starred"] = true
		} else {
			filter["starred"] = bson.M{"$ne": true}
		}
	}

	if q.Public {
		filter["deleted"] = nil
		filter["$or"] = bson.A{
			bson.M{"published": bson.M{"$ne": nil}},
			bson.M{"translations": bson.M{"$elemMatch": bson.M{"published": bson.M{"$ne": nil}}}},
		}
	}

	return filter
}

func (repository *MongoRepository) FindMany(context context.Context, q Query) ([]*Post, int, error) {
	filter := filterOf(q)

	findOptions := options.Find().
		SetSort(bson.D{{Key: "published", Value: -1}, {Key: "_id", Value: -1}})
	if q.Skip > 0 {
		findOptions.SetSkip(int64(q.Skip))
	}
	if q.Take > 0 {
		findOptions.SetLimit(int64(q.Take))
	}

	var (
		docs  []postDocument
		total int64
	)

	group, groupContext := errgroup.WithContext(context)
	group.Go(func() error {
		cursor, err := repository.collection.Find(groupContext, filter, findOptions)
		if err != nil {
			return dberr.Wrap(err, "list_posts")
		}
		return dberr.Wrap(cursor.All(groupContext, &docs), "decode_posts")
	})
	group.Go(func() error {
		count, err := repository.collection.CountDocuments(groupContext, filter)
		total = count
		return dberr.Wrap(err, "count_posts")
	})
	if err := group.Wait(); err != nil {
		return nil, 0, err
	}

	posts := make([]*Post, 0, len(docs))
	for _, doc := range docs {
		posts = append(posts, doc.toPost())
	}
	return posts, int(total), nil
}

func (repository *MongoRepository) Insert(context context.Context, p *Post) error {
	doc := toDocument(p)
	doc.Version = 1

	if _, err := repository.collection.InsertOne(context, doc); err != nil {
		return dberr.Wrap(err, "insert_post")
	}

	p.Version = 1
	return nil
}

func (repository *MongoRepository) Save(context context.Context, p *Post) error {
	doc := toDocument(p)
	doc.Version = p.Version + 1

	result, err := repository.collection.ReplaceOne(context, bson.M{"_id": p.ID, "version": p.Version}, doc)
	if err != nil {
		return dberr.Wrap(err, "save_post")
	}

	if result.MatchedCount == 0 {
		count, err := repository.collection.CountDocuments(context, bson.M{"_id": p.ID}, options.Count().SetLimit(1))
		if err != nil {
			return dberr.Wrap(err, "save_post")
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrVersionConflict
	}

	p.Version++
	return nil
}
