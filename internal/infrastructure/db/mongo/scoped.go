package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const fieldUserID = "user_id"

// ownedFilter selects a document by id and owner in one predicate, so a
// document belonging to someone else is indistinguishable from a missing one.
func ownedFilter(userID, id string) bson.M {
	return bson.M{"_id": id, fieldUserID: userID}
}

// scopedCollection holds the owner-scoped primitives shared by every
// per-user repository.
type scopedCollection[T any] struct {
	col      *mongo.Collection
	sortBy   string // creation timestamp field, sorted descending in lists
	notFound error
}

func (s scopedCollection[T]) insert(ctx context.Context, doc *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := s.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert %s: %w", s.col.Name(), err)
	}
	return nil
}

func (s scopedCollection[T]) findOwned(ctx context.Context, userID, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var v T
	if err := s.col.FindOne(ctx, ownedFilter(userID, id)).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, s.notFound
		}
		return nil, fmt.Errorf("find %s: %w", s.col.Name(), err)
	}
	return &v, nil
}

// list returns at most limit documents matching filter, newest first.
// Timestamps are stored at millisecond precision; documents created in the
// same millisecond are ordered by id descending so pages are stable.
func (s scopedCollection[T]) list(ctx context.Context, filter bson.M, limit int) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: s.sortBy, Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.col.Name(), err)
	}
	defer cur.Close(ctx)

	out := make([]*T, 0)
	for cur.Next(ctx) {
		var v T
		if err := cur.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", s.col.Name(), err)
		}
		out = append(out, &v)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", s.col.Name(), err)
	}
	return out, nil
}

// updateOwned applies set to the owned document and returns the result. An
// empty set writes nothing and returns the current document.
func (s scopedCollection[T]) updateOwned(ctx context.Context, userID, id string, set bson.M) (*T, error) {
	if len(set) == 0 {
		return s.findOwned(ctx, userID, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var v T
	err := s.col.FindOneAndUpdate(ctx, ownedFilter(userID, id), bson.M{"$set": set}, opts).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, s.notFound
		}
		return nil, fmt.Errorf("update %s: %w", s.col.Name(), err)
	}
	return &v, nil
}

func (s scopedCollection[T]) count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", s.col.Name(), err)
	}
	return n, nil
}
