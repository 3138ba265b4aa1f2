// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/url"

	deliverycontext "tourbook/internal/delivery/context"
	domainerrors "tourbook/internal/domain/errors"
	"tourbook/internal/domain/repository"
	"tourbook/internal/query"
	"tourbook/internal/usecase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Write actions passed to Hooks.AfterWrite.
const (
	actionCreated = "created"
	actionUpdated = "updated"
)

// Hooks are the resource-specific steps of the generic pipeline. Every field is optional.
//
//	create: Prepare(creating) -> Insert -> AfterWrite
//	update: FindByID -> Authorize -> patch -> Prepare -> Replace -> AfterWrite -> PopulateOne
//	delete: FindByID -> Authorize -> Delete -> AfterDelete
type Hooks[T any] struct {
	// Prepare validates the document and fills derived fields before it is stored.
	Prepare func(ctx context.Context, doc *T, creating bool) error
	// Authorize rejects updates and deletes the caller may not perform on doc.
	Authorize func(ctx context.Context, doc *T) error
	// AfterWrite runs once the document is stored. Failures are logged, not returned.
	AfterWrite func(ctx context.Context, doc *T, action string) error
	// AfterDelete runs once the document is removed. Failures are logged, not returned.
	AfterDelete func(ctx context.Context, doc *T) error
	// PopulateOne attaches related documents for single-document responses.
	PopulateOne func(ctx context.Context, doc *T) error
	// PopulateMany attaches related documents for list responses.
	PopulateMany func(ctx context.Context, docs []*T) error
}

// resourceService implements usecase.ResourceUsecase over any collection.
type resourceService[T any] struct {
	name   string
	repo   repository.Collection[T]
	schema *query.Schema
	hooks  Hooks[T]
	logger *slog.Logger
}

func newResourceService[T any](
	name string,
	repo repository.Collection[T],
	schema *query.Schema,
	hooks Hooks[T],
	logger *slog.Logger,
) *resourceService[T] {
	return &resourceService[T]{
		name:   name,
		repo:   repo,
		schema: schema,
		hooks:  hooks,
		logger: logger,
	}
}

var _ usecase.ResourceUsecase[struct{}] = (*resourceService[struct{}])(nil)

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *resourceService[T]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List runs the query pipeline. When a page is requested explicitly, a page
// starting past the documents in scope is reported as not found.
func (srv *resourceService[T]) List(ctx context.Context, scope bson.M, values url.Values) (*usecase.ListOutput[T], error) {
	features := query.New(srv.schema, values).
		WithScope(scope).
		Filter().
		Sort().
		LimitFields().
		Paginate()

	q, err := features.Build()
	if err != nil {
		return nil, err
	}

	if features.PageRequested() {
		total, err := srv.repo.Count(ctx, scope)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to count %s", srv.name)
		}
		if features.Skip() >= total {
			return nil, domainerrors.ErrPageNotFound
		}
	}

	items, err := srv.repo.Find(ctx, q)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", srv.name)
	}

	if srv.hooks.PopulateMany != nil && len(items) > 0 {
		if err := srv.hooks.PopulateMany(ctx, items); err != nil {
			return nil, errors.Wrapf(err, "failed to populate %s", srv.name)
		}
	}

	return &usecase.ListOutput[T]{Items: items, Results: len(items)}, nil
}

// Get returns one document with its related documents attached.
func (srv *resourceService[T]) Get(ctx context.Context, id string) (*T, error) {
	doc, _, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.populate(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// Create runs Prepare, stores the document and fires AfterWrite.
func (srv *resourceService[T]) Create(ctx context.Context, doc *T) (*T, error) {
	if srv.hooks.Prepare != nil {
		if err := srv.hooks.Prepare(ctx, doc, true); err != nil {
			return nil, err
		}
	}

	if err := srv.repo.Insert(ctx, doc); err != nil {
		return nil, storageError(err, "failed to create "+srv.name)
	}

	srv.afterWrite(ctx, doc, actionCreated)

	return doc, nil
}

// Update loads the document, applies patch, re-runs Prepare and replaces it.
func (srv *resourceService[T]) Update(ctx context.Context, id string, patch func(*T) error) (*T, error) {
	doc, oid, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if srv.hooks.Authorize != nil {
		if err := srv.hooks.Authorize(ctx, doc); err != nil {
			return nil, err
		}
	}

	if err := patch(doc); err != nil {
		return nil, err
	}

	if srv.hooks.Prepare != nil {
		if err := srv.hooks.Prepare(ctx, doc, false); err != nil {
			return nil, err
		}
	}

	if err := srv.repo.Replace(ctx, oid, doc); err != nil {
		return nil, storageError(err, "failed to update "+srv.name)
	}

	srv.afterWrite(ctx, doc, actionUpdated)

	if err := srv.populate(ctx, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// Delete removes the document and fires AfterDelete.
func (srv *resourceService[T]) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if srv.hooks.Authorize != nil {
		doc, _, err := srv.find(ctx, id)
		if err != nil {
			return err
		}
		if err := srv.hooks.Authorize(ctx, doc); err != nil {
			return err
		}
	}

	deleted, err := srv.repo.Delete(ctx, oid)
	if err != nil {
		return storageError(err, "failed to delete "+srv.name)
	}

	if srv.hooks.AfterDelete != nil {
		if err := srv.hooks.AfterDelete(ctx, deleted); err != nil {
			srv.log(ctx).Warn("After-delete step failed",
				slog.String("resource", srv.name),
				slog.String("id", id),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

func (srv *resourceService[T]) find(ctx context.Context, id string) (*T, primitive.ObjectID, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, primitive.NilObjectID, err
	}

	doc, err := srv.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, primitive.NilObjectID, storageError(err, "failed to find "+srv.name)
	}

	return doc, oid, nil
}

func (srv *resourceService[T]) populate(ctx context.Context, doc *T) error {
	if srv.hooks.PopulateOne == nil {
		return nil
	}

	return errors.Wrapf(srv.hooks.PopulateOne(ctx, doc), "failed to populate %s", srv.name)
}

func (srv *resourceService[T]) afterWrite(ctx context.Context, doc *T, action string) {
	if srv.hooks.AfterWrite == nil {
		return
	}

	if err := srv.hooks.AfterWrite(ctx, doc, action); err != nil {
		srv.log(ctx).Warn("After-write step failed",
			slog.String("resource", srv.name),
			slog.String("action", action),
			slog.Any("error", err),
		)
	}
}

// parseID converts a client-supplied id, reporting malformed ids like a cast failure.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domainerrors.NewInvalidValueError("_id", id)
	}

	return oid, nil
}

// storageError maps repository outcomes clients can act on to domain errors;
// anything else is an unexpected database failure described by operation.
func storageError(err error, operation string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.ErrDocumentNotFound
	}

	var dup *repository.DuplicateKeyError
	if errors.As(err, &dup) {
		return domainerrors.NewDuplicateFieldError(dup.Value)
	}

	return domainerrors.NewDatabaseExecuteError(err, operation)
}
