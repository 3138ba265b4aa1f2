package handler

import (
	"bytes"
	"net/http"
	"net/url"
	"slices"

	"tourbook/internal/delivery/api/binder"
	"tourbook/internal/delivery/api/response"
	domainerrors "tourbook/internal/domain/errors"
	"tourbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResourceOptions describes how a resource is exposed over HTTP.
type ResourceOptions[T any] struct {
	// Single and Plural key the document(s) inside the response data object.
	Single string
	Plural string

	// ScopeParam names a path parameter that restricts List to one parent
	// document, matched against ScopeField.
	ScopeParam string
	ScopeField string

	// ReadOnly fields are dropped from create and update bodies.
	ReadOnly []string
	// Immutable fields are dropped from update bodies only.
	Immutable []string

	// BeforeCreate runs on the decoded document before it is created.
	BeforeCreate func(c echo.Context, doc *T) error
}

// ResourceHandler serves the list, get, create, update and delete routes of one resource.
type ResourceHandler[T any] struct {
	uc   usecase.ResourceUsecase[T]
	opts ResourceOptions[T]
}

// NewResourceHandler is the constructor for ResourceHandler.
func NewResourceHandler[T any](uc usecase.ResourceUsecase[T], opts ResourceOptions[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{uc: uc, opts: opts}
}

// List handles GET on the collection, honouring filter, sort, fields, page and limit.
func (h *ResourceHandler[T]) List(c echo.Context) error {
	return h.ListWith(c, c.QueryParams())
}

// ListWith lists using values in place of the request's query string.
func (h *ResourceHandler[T]) ListWith(c echo.Context, values url.Values) error {
	scope, err := h.scope(c)
	if err != nil {
		return err
	}

	out, err := h.uc.List(c.Request().Context(), scope, values)
	if err != nil {
		return err
	}

	return response.List(c, h.opts.Plural, out.Items, out.Results)
}

// Get handles GET /:id.
func (h *ResourceHandler[T]) Get(c echo.Context) error {
	doc, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.opts.Single, doc)
}

// Create handles POST on the collection.
func (h *ResourceHandler[T]) Create(c echo.Context) error {
	body, err := binder.ReadBody(c, h.opts.ReadOnly...)
	if err != nil {
		return err
	}

	doc := new(T)
	if err := binder.Decode(bytes.NewReader(body), doc); err != nil {
		return err
	}
	if h.opts.BeforeCreate != nil {
		if err := h.opts.BeforeCreate(c, doc); err != nil {
			return err
		}
	}

	created, err := h.uc.Create(c.Request().Context(), doc)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, h.opts.Single, created)
}

// Update handles PATCH /:id. Only the fields present in the body change.
func (h *ResourceHandler[T]) Update(c echo.Context) error {
	body, err := binder.ReadBody(c, slices.Concat(h.opts.ReadOnly, h.opts.Immutable)...)
	if err != nil {
		return err
	}

	updated, err := h.uc.Update(c.Request().Context(), c.Param("id"), func(doc *T) error {
		return binder.Decode(bytes.NewReader(body), doc)
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.opts.Single, updated)
}

// Delete handles DELETE /:id and answers 204 with no body.
func (h *ResourceHandler[T]) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.NoContent(c)
}

func (h *ResourceHandler[T]) scope(c echo.Context) (bson.M, error) {
	if h.opts.ScopeParam == "" {
		return nil, nil
	}

	raw := c.Param(h.opts.ScopeParam)
	if raw == "" {
		return nil, nil
	}

	id, err := parseObjectID(h.opts.ScopeParam, raw)
	if err != nil {
		return nil, err
	}

	return bson.M{h.opts.ScopeField: id}, nil
}

func parseObjectID(name, raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, domainerrors.NewInvalidValueError(name, raw)
	}

	return id, nil
}
