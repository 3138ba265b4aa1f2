// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"net/url"

	"go.mongodb.org/mongo-driver/bson"
)

// ListOutput is one page of a resource listing.
type ListOutput[T any] struct {
	Items   []*T
	Results int
}

// ResourceUsecase is the list/read/create/update/delete contract shared by every resource.
// Ids are the hex form received from clients; malformed ids are validation errors.
type ResourceUsecase[T any] interface {
	// List runs the query pipeline over values, constrained by scope.
	List(ctx context.Context, scope bson.M, values url.Values) (*ListOutput[T], error)

	// Get returns one document.
	Get(ctx context.Context, id string) (*T, error)

	// Create validates and stores doc.
	Create(ctx context.Context, doc *T) (*T, error)

	// Update loads the document, applies patch and stores the result.
	Update(ctx context.Context, id string, patch func(*T) error) (*T, error)

	// Delete removes the document.
	Delete(ctx context.Context, id string) error
}
