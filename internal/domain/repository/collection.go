// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tourbook/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Domain-specific persistence errors.
// This allows the application layer to handle specific outcomes without depending on driver errors.
var (
	// ErrNotFound is returned when no document matches.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// DuplicateKeyError carries the offending value of a unique index violation.
type DuplicateKeyError struct {
	Field string
	Value any
}

func (e *DuplicateKeyError) Error() string {
	return "duplicate key on " + e.Field
}

// Is lets callers test with errors.Is(err, ErrDuplicateKey).
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// Collection is the generic document store behind every resource.
// Implementations apply their default scope to every read.
type Collection[T any] interface {
	// Find runs a built query.
	Find(ctx context.Context, q *query.Query) ([]*T, error)

	// Count returns the number of documents matching filter.
	Count(ctx context.Context, filter bson.M) (int64, error)

	// FindByID retrieves a single document or ErrNotFound.
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)

	// FindOne retrieves the first document matching filter or ErrNotFound.
	FindOne(ctx context.Context, filter bson.M) (*T, error)

	// Insert persists a new document, assigning its id when unset.
	Insert(ctx context.Context, doc *T) error

	// Replace overwrites the document with the given id or returns ErrNotFound.
	Replace(ctx context.Context, id primitive.ObjectID, doc *T) error

	// Delete removes the document and returns it, or ErrNotFound.
	Delete(ctx context.Context, id primitive.ObjectID) (*T, error)
}
