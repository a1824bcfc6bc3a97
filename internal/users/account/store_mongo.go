// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/taibuivan/lingopress/internal/platform/constants"
	"github.com/taibuivan/lingopress/internal/platform/dberr"
)

// MongoRepository implements [Repository] on the users collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates a new MongoDB account repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(constants.CollectionUsers)}
}

func (repository *MongoRepository) FindByID(context context.Context, id string) (*User, error) {
	user := &User{}
	err := repository.collection.FindOne(context, bson.M{"_id": id}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, dberr.Wrap(err, "find_account_by_id")
	}
	return user, nil
}

func (repository *MongoRepository) FindAll(context context.Context) ([]*User, error) {
	cursor, err := repository.collection.Find(context, bson.M{}, options.Find().SetSort(bson.D{{Key: "email", Value: 1}}))
	if err != nil {
		return nil, dberr.Wrap(err, "list_accounts")
	}

	users := make([]*User, 0)
	if err := cursor.All(context, &users); err != nil {
		return nil, dberr.Wrap(err, "decode_accounts")
	}
	return users, nil
}

func (repository *MongoRepository) Insert(context context.Context, user *User) error {
	_, err := repository.collection.InsertOne(context, user)
	return dberr.Wrap(err, "insert_account")
}

func (repository *MongoRepository) Update(context context.Context, user *User) error {
	result, err := repository.collection.UpdateOne(context,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"name": user.Name, "role": user.Role, "updated": user.UpdatedAt}},
	)
	if err != nil {
		return dberr.Wrap(err, "update_account")
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
