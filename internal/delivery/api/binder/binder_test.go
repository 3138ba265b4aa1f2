package binder

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "tourbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func newContext(body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBinder_Bind(t *testing.T) {
	var in loginInput
	err := New().Bind(&in, newContext(`{"email":"a@b.c","password":"secret"}`))

	require.NoError(t, err)
	assert.Equal(t, loginInput{Email: "a@b.c", Password: "secret"}, in)
}

func TestBinder_RejectsUnknownField(t *testing.T) {
	var in loginInput
	err := New().Bind(&in, newContext(`{"email":"a@b.c","role":"admin"}`))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "Invalid field: role.", appErr.Message())
}

func TestBinder_SyntaxErrorPassesThrough(t *testing.T) {
	var in loginInput
	err := New().Bind(&in, newContext(`{"email" "a@b.c"}`))

	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestBinder_EmptyBody(t *testing.T) {
	in := loginInput{Email: "keep"}
	req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	require.NoError(t, New().Bind(&in, c))
	assert.Equal(t, "keep", in.Email)
}

func TestReadBody_StripsKeys(t *testing.T) {
	c := newContext(`{"name":"The Park Camper","ratingsAverage":1,"slug":"x"}`)

	body, err := ReadBody(c, "ratingsAverage", "slug")

	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"The Park Camper"}`, string(body))
}

func TestReadBody_RejectsNonObject(t *testing.T) {
	_, err := ReadBody(newContext(`[1,2]`), "slug")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid JSON body.", appErr.Message())
}
