package storage

import (
	"context"
	"errors"

	"bistro-boss/boss-svc/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection applies the same list/get/insert/update/delete contract to
// any document type.
type Collection[T any] struct {
	coll *mongo.Collection
}

func NewCollection[T any](coll *mongo.Collection) *Collection[T] {
	return &Collection[T]{coll: coll}
}

// Find returns every matching document. There is no paging.
func (c *Collection[T]) Find(ctx context.Context, filter bson.M) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindOne returns nil without an error when nothing matches.
func (c *Collection[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	err := c.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return c.FindOne(ctx, bson.M{"_id": id})
}

func (c *Collection[T]) Insert(ctx context.Context, doc *T) (domain.InsertResult, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return domain.InsertResult{}, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return domain.InsertResult{Acknowledged: true, InsertedID: &id}, nil
}

// Set merges fields into the first matching document; other fields are
// left untouched.
func (c *Collection[T]) Set(ctx context.Context, filter bson.M, fields bson.M) (domain.UpdateResult, error) {
	res, err := c.coll.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (c *Collection[T]) Delete(ctx context.Context, filter bson.M) (domain.DeleteResult, error) {
	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
