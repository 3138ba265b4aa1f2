package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourbook/config"
	"tourbook/internal/delivery/api/response"
	deliverycontext "tourbook/internal/delivery/context"
	"tourbook/internal/domain/constants"
	"tourbook/internal/domain/entity"
	domainerrors "tourbook/internal/domain/errors"
	"tourbook/internal/domain/repository"
	"tourbook/internal/errors"
	mockusecase "tourbook/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/time/rate"
)

func newEcho(production bool) *echo.Echo {
	cfg := &config.Config{}
	cfg.Env.Env = config.EnvDevelopment
	if production {
		cfg.Env.Env = config.EnvProduction
	}

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.DiscardHandler), cfg).HandleHTTPError

	return e
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &entity.User{ID: primitive.NewObjectID(), Name: "Jonas", Roles: entity.Roles{entity.RoleUser}}

	tests := []struct {
		name       string
		setup      func(req *http.Request)
		mockSetup  func(uc *mockusecase.MockAuthUsecase)
		wantStatus int
	}{
		{
			name:       "no token",
			setup:      func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "logged out cookie",
			setup: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: constants.AccessTokenCookie, Value: LoggedOutCookieValue})
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "bearer header",
			setup: func(req *http.Request) {
				req.Header.Set(echo.HeaderAuthorization, "bearer header-token")
			},
			mockSetup: func(uc *mockusecase.MockAuthUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "header-token").Return(user, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "cookie",
			setup: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: constants.AccessTokenCookie, Value: "cookie-token"})
			},
			mockSetup: func(uc *mockusecase.MockAuthUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "cookie-token").Return(user, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "rejected token",
			setup: func(req *http.Request) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer stale")
			},
			mockSetup: func(uc *mockusecase.MockAuthUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrTokenStale)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockusecase.NewMockAuthUsecase(t)
			if tt.mockSetup != nil {
				tt.mockSetup(uc)
			}
			m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: uc})

			e := newEcho(true)
			e.GET("/me", func(c echo.Context) error {
				got := deliverycontext.GetUserFromEcho(c)
				require.NotNil(t, got)
				assert.Equal(t, user.ID, got.ID)

				return c.NoContent(http.StatusOK)
			}, m.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(req)
			rec := serve(e, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, response.StatusFail, decode(t, rec).Status)
			}
		})
	}
}

func TestAuthMiddleware_RestrictTo(t *testing.T) {
	tests := []struct {
		name       string
		roles      entity.Roles
		wantStatus int
	}{
		{name: "allowed role", roles: entity.Roles{entity.RoleLeadGuide}, wantStatus: http.StatusOK},
		{name: "any of several", roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "missing role", roles: entity.Roles{entity.RoleUser}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockusecase.NewMockAuthUsecase(t)
			uc.EXPECT().Authenticate(mock.Anything, "tok").Return(&entity.User{ID: primitive.NewObjectID(), Roles: tt.roles}, nil)
			m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: uc})

			e := newEcho(true)
			e.DELETE("/tours/:id", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}, m.Authenticate, m.RestrictTo(entity.RoleAdmin, entity.RoleLeadGuide))

			req := httptest.NewRequest(http.MethodDelete, "/tours/1", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
			rec := serve(e, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				env := decode(t, rec)
				assert.Equal(t, domainerrors.CodeForbidden, env.Code)
				assert.Contains(t, env.Message, "admin, lead-guide")
			}
		})
	}
}

func TestAuthMiddleware_RestrictToWithoutPrincipal(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: mockusecase.NewMockAuthUsecase(t)})
	e := newEcho(true)
	e.GET("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, m.RestrictTo(entity.RoleAdmin))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestErrorMiddleware_Normalize(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "app error",
			err:     errors.Wrap(domainerrors.ErrDocumentNotFound, "get tour"),
			status:  http.StatusNotFound,
			code:    domainerrors.CodeNotFound,
			message: "No document found with that ID",
		},
		{
			name:    "duplicate key",
			err:     errors.WithStack(&repository.DuplicateKeyError{Field: "name", Value: "The Forest Hiker"}),
			status:  http.StatusBadRequest,
			code:    domainerrors.CodeConflict,
			message: `Duplicate field value: "The Forest Hiker". Please use another value!`,
		},
		{
			name:    "json syntax",
			err:     &json.SyntaxError{Offset: 3},
			status:  http.StatusBadRequest,
			code:    domainerrors.CodeValidation,
			message: "Invalid JSON body.",
		},
		{
			name:    "json type",
			err:     &json.UnmarshalTypeError{Field: "price", Value: "string"},
			status:  http.StatusBadRequest,
			code:    domainerrors.CodeValidation,
			message: "Invalid price: string.",
		},
		{
			name:    "wrapped echo error keeps operational cause",
			err:     echo.NewHTTPError(http.StatusBadRequest).SetInternal(domainerrors.ErrInvalidUnit),
			status:  http.StatusBadRequest,
			message: domainerrors.ErrInvalidUnit.Message(),
		},
		{
			name:    "body too large",
			err:     echo.ErrStatusRequestEntityTooLarge,
			status:  http.StatusRequestEntityTooLarge,
			code:    "HTTP_ERROR",
			message: "Request Entity Too Large",
		},
		{
			name:   "unexpected",
			err:    errors.New("connection reset"),
			status: http.StatusInternalServerError,
			code:   domainerrors.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), httptest.NewRecorder())

			appErr := Normalize(tt.err, c)
			assert.Equal(t, tt.status, appErr.HTTPCode())
			if tt.code != "" {
				assert.Equal(t, tt.code, appErr.ErrorCode())
			}
			if tt.message != "" {
				assert.Equal(t, tt.message, appErr.Message())
			}
		})
	}
}

func TestErrorMiddleware_UnknownRoute(t *testing.T) {
	e := newEcho(true)
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/nope?x=1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, response.StatusFail, env.Status)
	assert.Equal(t, "Can't find /api/v1/nope?x=1 on this server!", env.Message)
}

func TestErrorMiddleware_ProductionHidesInternals(t *testing.T) {
	e := newEcho(true)
	e.GET("/boom", func(echo.Context) error {
		return errors.New("mongo: no reachable servers")
	})
	e.GET("/gone", func(echo.Context) error {
		return domainerrors.ErrDocumentNotFound
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, response.StatusError, env.Status)
	assert.Equal(t, "Something went very wrong!", env.Message)
	assert.Empty(t, env.Error)
	assert.Empty(t, env.Stack)
	assert.NotContains(t, rec.Body.String(), "mongo")

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/gone", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No document found with that ID", decode(t, rec).Message)
}

func TestErrorMiddleware_ProductionHidesStorageFailures(t *testing.T) {
	e := newEcho(true)
	e.GET("/tours", func(echo.Context) error {
		return domainerrors.NewDatabaseExecuteError(errors.New("mongo: no reachable servers"), "failed to find tours")
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/tours", nil))
	assert.Equal(t, domainerrors.ErrInternalError.HTTPCode(), rec.Code)
	env := decode(t, rec)
	assert.Equal(t, response.StatusError, env.Status)
	assert.Equal(t, domainerrors.ErrInternalError.Message(), env.Message)
	assert.NotContains(t, rec.Body.String(), "failed to find tours")
	assert.NotContains(t, rec.Body.String(), "mongo")
}

func TestErrorMiddleware_DevelopmentIncludesDetail(t *testing.T) {
	e := newEcho(false)
	e.GET("/boom", func(echo.Context) error {
		return errors.New("mongo: no reachable servers")
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, response.StatusError, env.Status)
	assert.Contains(t, env.Error, "no reachable servers")
	assert.NotEmpty(t, env.Stack)
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := newEcho(true)
	e.GET("/partial", func(c echo.Context) error {
		_ = c.String(http.StatusAccepted, "partial")

		return errors.New("late failure")
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/partial", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("disabled without store", func(t *testing.T) {
		m := NewRateLimitMiddleware(RateLimitMiddlewareParams{})
		e := newEcho(true)
		e.POST("/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, m.Limit())

		for range 5 {
			assert.Equal(t, http.StatusOK, serve(e, httptest.NewRequest(http.MethodPost, "/login", nil)).Code)
		}
	})

	t.Run("denies over budget", func(t *testing.T) {
		store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(1),
			Burst:     2,
			ExpiresIn: time.Minute,
		})
		m := NewRateLimitMiddleware(RateLimitMiddlewareParams{Store: store})
		e := newEcho(true)
		e.POST("/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, m.Limit())

		codes := make([]int, 0, 3)
		for range 3 {
			codes = append(codes, serve(e, httptest.NewRequest(http.MethodPost, "/login", nil)).Code)
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

		rec := serve(e, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, "Too many requests from this IP, please try again in an hour!", decode(t, rec).Message)
	})
}
