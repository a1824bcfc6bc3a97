// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/taibuivan/lingopress/internal/platform/constants"
	"github.com/taibuivan/lingopress/internal/platform/dberr"
)

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(constants.CollectionTags)}
}

func (repository *MongoRepository) List(context context.Context, locale string) ([]*Tag, error) {
	cursor, err := repository.collection.Find(context,
		bson.M{"locale": locale},
		options.Find().SetSort(bson.D{{Key: "tag", Value: 1}}),
	)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}

	tags := make([]*Tag, 0)
	if err := cursor.All(context, &tags); err != nil {
		return nil, dberr.Wrap(err, "decode_tags")
	}
	return tags, nil
}

// Add upserts on the unique (locale, tag) index. A duplicate-key error means
// a concurrent Add won the race, which is the same outcome.
func (repository *MongoRepository) Add(context context.Context, tag *Tag) error {
	_, err := repository.collection.UpdateOne(context,
		bson.M{"locale": tag.Locale, "tag": tag.Tag},
		bson.M{"$setOnInsert": bson.M{"_id": tag.ID, "created": tag.CreatedAt}},
		options.UpdateOne().SetUpsert(true),
	)
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return dberr.Wrap(err, "add_tag")
}

func (repository *MongoRepository) Remove(context context.Context, locale, tag string) error {
	_, err := repository.collection.DeleteOne(context, bson.M{"locale": locale, "tag": tag})
	return dberr.Wrap(err, "remove_tag")
}
