package query

import (
	"strconv"
	"strings"
	"time"

	domainerrors "tourbook/internal/domain/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind describes how a field's query-string values are cast.
type Kind int

const (
	String Kind = iota
	Number
	Bool
	Date
	ObjectID
	// Opaque fields can be projected but not filtered or sorted on.
	Opaque
)

// Schema lists the fields a resource exposes to the query pipeline.
type Schema struct {
	// Fields maps every queryable field to its kind.
	Fields map[string]Kind
	// Hidden fields never leave the store through list queries.
	Hidden []string
	// DefaultSort applies when the request has no sort parameter.
	DefaultSort string
}

func (s *Schema) kind(field string) (Kind, bool) {
	k, ok := s.Fields[field]

	return k, ok
}

func (s *Schema) isHidden(field string) bool {
	for _, h := range s.Hidden {
		if h == field {
			return true
		}
	}

	return false
}

func (s *Schema) defaultSort() string {
	if s.DefaultSort == "" {
		return "-createdAt"
	}

	return s.DefaultSort
}

// cast converts a raw query-string value into the field's stored type.
func (k Kind) cast(field, raw string) (any, error) {
	switch k {
	case String:
		return raw, nil
	case Number:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, domainerrors.NewInvalidValueError(field, raw)
		}

		return v, nil
	case Bool:
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, domainerrors.NewInvalidValueError(field, raw)
		}

		return v, nil
	case Date:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if v, err := time.Parse(layout, strings.TrimSpace(raw)); err == nil {
				return v, nil
			}
		}

		return nil, domainerrors.NewInvalidValueError(field, raw)
	case ObjectID:
		v, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
		if err != nil {
			return nil, domainerrors.NewInvalidValueError(field, raw)
		}

		return v, nil
	default:
		return nil, domainerrors.NewInvalidValueError("filter field", field)
	}
}
