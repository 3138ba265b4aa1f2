package mongodb

import (
	"context"

	"tourbook/internal/domain/repository"
	"tourbook/internal/errors"
	"tourbook/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type identifiable interface {
	GetID() primitive.ObjectID
	SetID(primitive.ObjectID)
}

// collection is the generic repository.Collection implementation.
// scope is ANDed into every read so callers cannot see excluded documents.
type collection[T any] struct {
	coll  *mongo.Collection
	scope bson.M
}

func newCollection[T any](coll *mongo.Collection, scope bson.M) *collection[T] {
	return &collection[T]{coll: coll, scope: scope}
}

func (c *collection[T]) scoped(filter bson.M) bson.M {
	switch {
	case len(c.scope) == 0:
		if filter == nil {
			return bson.M{}
		}

		return filter
	case len(filter) == 0:
		return c.scope
	default:
		return bson.M{"$and": bson.A{c.scope, filter}}
	}
}

// Find runs a built query.
func (c *collection[T]) Find(ctx context.Context, q *query.Query) ([]*T, error) {
	cursor, err := c.coll.Find(ctx, c.scoped(q.Filter), q.FindOptions())
	if err != nil {
		return nil, mapError(err)
	}

	return decodeAll[T](ctx, cursor)
}

// Count returns the number of documents matching filter.
func (c *collection[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, c.scoped(filter))
	if err != nil {
		return 0, mapError(err)
	}

	return n, nil
}

// FindByID retrieves a single document or ErrNotFound.
func (c *collection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return c.FindOne(ctx, bson.M{"_id": id})
}

// FindOne retrieves the first document matching filter or ErrNotFound.
func (c *collection[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	doc := new(T)
	if err := c.coll.FindOne(ctx, c.scoped(filter)).Decode(doc); err != nil {
		return nil, mapError(err)
	}

	return doc, nil
}

// Insert persists a new document, assigning its id when unset.
func (c *collection[T]) Insert(ctx context.Context, doc *T) error {
	if d, ok := any(doc).(identifiable); ok && d.GetID().IsZero() {
		d.SetID(primitive.NewObjectID())
	}

	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return mapError(err)
	}

	return nil
}

// Replace overwrites the document with the given id or returns ErrNotFound.
func (c *collection[T]) Replace(ctx context.Context, id primitive.ObjectID, doc *T) error {
	res, err := c.coll.ReplaceOne(ctx, c.scoped(bson.M{"_id": id}), doc)
	if err != nil {
		return mapError(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes the document and returns it, or ErrNotFound.
func (c *collection[T]) Delete(ctx context.Context, id primitive.ObjectID) (*T, error) {
	doc := new(T)
	if err := c.coll.FindOneAndDelete(ctx, c.scoped(bson.M{"_id": id})).Decode(doc); err != nil {
		return nil, mapError(err)
	}

	return doc, nil
}

func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor) ([]*T, error) {
	defer cursor.Close(ctx)

	docs := make([]*T, 0)
	for cursor.Next(ctx) {
		doc := new(T)
		if err := cursor.Decode(doc); err != nil {
			return nil, errors.WithStack(err)
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return docs, nil
}
