// Package binder decodes request bodies strictly: unknown JSON fields are an
// error rather than being silently dropped.
package binder

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	domainerrors "tourbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const unknownFieldPrefix = "json: unknown field "

// Binder is an echo.Binder that rejects unknown JSON fields.
// Non-JSON bodies fall back to echo's default binder.
type Binder struct {
	fallback echo.DefaultBinder
}

func New() *Binder {
	return &Binder{}
}

// Bind decodes the request body into i.
func (b *Binder) Bind(i any, c echo.Context) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return nil
	}

	ctype := req.Header.Get(echo.HeaderContentType)
	if ctype != "" && !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return b.fallback.BindBody(c, i)
	}

	return Decode(req.Body, i)
}

// Decode reads one JSON value from r into v. An empty body leaves v untouched.
func Decode(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	err := dec.Decode(v)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	case strings.HasPrefix(err.Error(), unknownFieldPrefix):
		field := strings.Trim(strings.TrimPrefix(err.Error(), unknownFieldPrefix), `"`)

		return domainerrors.NewInvalidValueError("field", field)
	default:
		return errors.WithStack(err)
	}
}

// ReadBody returns the JSON body of c with the named top-level keys removed.
func ReadBody(c echo.Context, strip ...string) ([]byte, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(strip) == 0 || len(bytes.TrimSpace(body)) == 0 {
		return body, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, domainerrors.NewValidationError("Invalid JSON body.")
	}
	for _, key := range strip {
		delete(fields, key)
	}

	out, err := json.Marshal(fields)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return out, nil
}
