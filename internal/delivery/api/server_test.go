package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"tourbook/config"
	apimiddleware "tourbook/internal/delivery/api/middleware"
	"tourbook/internal/delivery/api/response"
	"tourbook/internal/delivery/api/router"
	"tourbook/internal/delivery/api/router/handler"
	deliverycontext "tourbook/internal/delivery/context"
	"tourbook/internal/domain/constants"
	"tourbook/internal/domain/entity"
	domainerrors "tourbook/internal/domain/errors"
	mockusecase "tourbook/internal/mocks/usecase"
	"tourbook/internal/usecase"
	"tourbook/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testServer struct {
	e        *echo.Echo
	authUC   *mockusecase.MockAuthUsecase
	tourUC   *mockusecase.MockTourUsecase
	reviewUC *mockusecase.MockReviewUsecase
	userUC   *mockusecase.MockUserUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = config.EnvProduction
	cfg.HTTP.MaxRequestBodySize = "10KB"
	cfg.Auth = &config.AuthConfig{}
	logger := slog.New(slog.DiscardHandler)

	s := &testServer{
		authUC:   mockusecase.NewMockAuthUsecase(t),
		tourUC:   mockusecase.NewMockTourUsecase(t),
		reviewUC: mockusecase.NewMockReviewUsecase(t),
		userUC:   mockusecase.NewMockUserUsecase(t),
	}

	s.e = NewEcho(cfg, logger, util.NewValidator())
	router.NewRouter(router.RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: s.authUC, Config: cfg, Logger: logger}),
		UserHandler:         handler.NewUserHandler(handler.UserHandlerParams{UserUC: s.userUC, Logger: logger}),
		TourHandler:         handler.NewTourHandler(handler.TourHandlerParams{TourUC: s.tourUC, Logger: logger}),
		ReviewHandler:       handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: s.reviewUC}),
		HealthHandler:       handler.NewHealthHandler(handler.HealthHandlerParams{}),
		AuthMiddleware:      apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{AuthUC: s.authUC}),
		RateLimitMiddleware: apimiddleware.NewRateLimitMiddleware(apimiddleware.RateLimitMiddlewareParams{}),
	}).RegisterRoutes(s.e)

	return s
}

// loginAs makes "Bearer <role>" resolve to a user holding role.
func (s *testServer) loginAs(role entity.Role) *entity.User {
	user := &entity.User{ID: primitive.NewObjectID(), Name: "Test " + string(role), Roles: entity.Roles{role}}
	s.authUC.EXPECT().Authenticate(mock.Anything, string(role)).Return(user, nil).Maybe()

	return user
}

func (s *testServer) do(method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Status  string                     `json:"status"`
	Results *int                       `json:"results"`
	Token   string                     `json:"token"`
	Data    map[string]json.RawMessage `json:"data"`
	Message string                     `json:"message"`
	Code    string                     `json:"code"`
	Meta    response.MetaInfo          `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{"/api/v1/bookings", "/api/v1/users/me/extra/deep"} {
		rec := s.do(http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "fail", env.Status)
		assert.Equal(t, "Can't find "+target+" on this server!", env.Message)
		assert.NotEmpty(t, env.Meta.RequestID)
	}
}

func TestServer_ListTours(t *testing.T) {
	s := newTestServer(t)
	tour := &entity.Tour{ID: primitive.NewObjectID(), Name: "The Forest Hiker", Price: 397}

	s.tourUC.EXPECT().List(mock.Anything, bson.M(nil), mock.Anything).
		RunAndReturn(func(_ context.Context, _ bson.M, values url.Values) (*usecase.ListOutput[entity.Tour], error) {
			assert.Equal(t, "easy", values.Get("difficulty"))
			assert.Equal(t, "-price", values.Get("sort"))

			return &usecase.ListOutput[entity.Tour]{Items: []*entity.Tour{tour}, Results: 1}, nil
		})

	rec := s.do(http.MethodGet, "/api/v1/tours?difficulty=easy&sort=-price", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "success", env.Status)
	require.NotNil(t, env.Results)
	assert.Equal(t, 1, *env.Results)
	assert.Contains(t, string(env.Data["tours"]), "The Forest Hiker")
}

func TestServer_TopFiveCheap(t *testing.T) {
	s := newTestServer(t)

	s.tourUC.EXPECT().List(mock.Anything, bson.M(nil), mock.Anything).
		RunAndReturn(func(_ context.Context, _ bson.M, values url.Values) (*usecase.ListOutput[entity.Tour], error) {
			assert.Equal(t, "5", values.Get("limit"))
			assert.Equal(t, "-ratingsAverage,price", values.Get("sort"))
			assert.Equal(t, "name,price,ratingsAverage,summary,difficulty", values.Get("fields"))
			assert.Equal(t, "easy", values.Get("difficulty"))

			return &usecase.ListOutput[entity.Tour]{}, nil
		})

	rec := s.do(http.MethodGet, "/api/v1/tours/top-5-cheap?limit=50&difficulty=easy", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CreateTourRequiresManager(t *testing.T) {
	s := newTestServer(t)
	s.loginAs(entity.RoleUser)

	rec := s.do(http.MethodPost, "/api/v1/tours", "", `{"name":"The Forest Hiker"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "You are not logged in! Please log in to get access.", decode(t, rec).Message)

	rec = s.do(http.MethodPost, "/api/v1/tours", string(entity.RoleUser), `{"name":"The Forest Hiker"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_CreateTour(t *testing.T) {
	s := newTestServer(t)
	s.loginAs(entity.RoleAdmin)

	s.tourUC.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, doc *entity.Tour) (*entity.Tour, error) {
			assert.Equal(t, "The Forest Hiker", doc.Name)
			assert.Equal(t, 397.0, doc.Price)
			assert.Zero(t, doc.RatingsAverage, "read-only fields are dropped")
			assert.Empty(t, doc.Slug)
			doc.ID = primitive.NewObjectID()

			return doc, nil
		})

	rec := s.do(http.MethodPost, "/api/v1/tours", string(entity.RoleAdmin),
		`{"name":"The Forest Hiker","price":397,"ratingsAverage":5,"slug":"x"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, string(decode(t, rec).Data["tour"]), `"name":"The Forest Hiker"`)

	rec = s.do(http.MethodPost, "/api/v1/tours", string(entity.RoleAdmin), `{"price":"cheap"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_CreateSecretTour(t *testing.T) {
	s := newTestServer(t)
	s.loginAs(entity.RoleLeadGuide)

	var stored *entity.Tour
	s.tourUC.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, doc *entity.Tour) (*entity.Tour, error) {
			doc.ID = primitive.NewObjectID()
			stored = doc

			return doc, nil
		})

	rec := s.do(http.MethodPost, "/api/v1/tours", string(entity.RoleLeadGuide),
		`{"name":"The Secret Forest Hike","price":497,"secretTour":true}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, stored)
	assert.True(t, stored.SecretTour)
	assert.NotContains(t, rec.Body.String(), "secretTour")

	// the tour store hides secret tours, so reads come back empty or not found
	s.tourUC.EXPECT().List(mock.Anything, bson.M(nil), mock.Anything).
		Return(&usecase.ListOutput[entity.Tour]{Items: []*entity.Tour{}}, nil)
	s.tourUC.EXPECT().Get(mock.Anything, stored.ID.Hex()).
		Return(nil, domainerrors.NewNotFoundError("No document found with that ID"))

	rec = s.do(http.MethodGet, "/api/v1/tours", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "The Secret Forest Hike")

	rec = s.do(http.MethodGet, "/api/v1/tours/"+stored.ID.Hex(), "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_UpdateTourAppliesPatch(t *testing.T) {
	s := newTestServer(t)
	s.loginAs(entity.RoleLeadGuide)
	id := primitive.NewObjectID()
	existing := &entity.Tour{ID: id, Name: "The Forest Hiker", Price: 397, RatingsAverage: 4.7}

	s.tourUC.EXPECT().Update(mock.Anything, id.Hex(), mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, patch func(*entity.Tour) error) (*entity.Tour, error) {
			require.NoError(t, patch(existing))

			return existing, nil
		})

	rec := s.do(http.MethodPatch, "/api/v1/tours/"+id.Hex(), string(entity.RoleLeadGuide), `{"price":500,"ratingsAverage":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 500.0, existing.Price)
	assert.Equal(t, "The Forest Hiker", existing.Name)
	assert.Equal(t, 4.7, existing.RatingsAverage)
}

func TestServer_DeleteTour(t *testing.T) {
	s := newTestServer(t)
	s.loginAs(entity.RoleAdmin)
	id := primitive.NewObjectID()

	s.tourUC.EXPECT().Delete(mock.Anything, id.Hex()).Return(nil).Once()
	rec := s.do(http.MethodDelete, "/api/v1/tours/"+id.Hex(), string(entity.RoleAdmin), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	s.tourUC.EXPECT().Delete(mock.Anything, "missing").Return(domainerrors.ErrDocumentNotFound).Once()
	rec = s.do(http.MethodDelete, "/api/v1/tours/missing", string(entity.RoleAdmin), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_TourReports(t *testing.T) {
	s := newTestServer(t)
	s.loginAs(entity.RoleGuide)

	s.tourUC.EXPECT().Stats(mock.Anything).Return([]*entity.TourStats{{Difficulty: "easy", NumTours: 3}}, nil)
	rec := s.do(http.MethodGet, "/api/v1/tours/stats", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data["stats"]), `"numTours":3`)

	s.tourUC.EXPECT().MonthlyPlan(mock.Anything, "2021").Return([]*entity.MonthlyPlan{}, nil)
	rec = s.do(http.MethodGet, "/api/v1/tours/monthly-plan/2021", string(entity.RoleGuide), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	s.tourUC.EXPECT().ToursWithin(mock.Anything, "400", "34.1,-118.1", "mi").Return([]*entity.Tour{}, nil)
	rec = s.do(http.MethodGet, "/api/v1/tours/tours-within/400/center/34.1,-118.1/unit/mi", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, *decode(t, rec).Results)

	s.tourUC.EXPECT().Distances(mock.Anything, "34.1,-118.1", "km").Return([]*entity.TourDistance{}, nil).Twice()
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/tours/distances/34.1,-118.1/unit/km", "", "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/tours/tours-distances/34.1,-118.1/unit/km", "", "").Code)
}

func TestServer_ShareQR(t *testing.T) {
	s := newTestServer(t)
	id := primitive.NewObjectID()
	png := []byte("\x89PNG\r\n")

	s.tourUC.EXPECT().ShareQR(mock.Anything, id.Hex()).Return(png, nil)

	rec := s.do(http.MethodGet, "/api/v1/tours/"+id.Hex()+"/qr", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestServer_NestedReviews(t *testing.T) {
	s := newTestServer(t)
	s.loginAs(entity.RoleUser)
	tourID := primitive.NewObjectID()

	s.reviewUC.EXPECT().List(mock.Anything, bson.M{"tour": tourID}, mock.Anything).
		Return(&usecase.ListOutput[entity.Review]{Items: []*entity.Review{}, Results: 0}, nil)
	rec := s.do(http.MethodGet, "/api/v1/tours/"+tourID.Hex()+"/reviews", string(entity.RoleUser), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode(t, rec).Data, "reviews")

	s.reviewUC.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, doc *entity.Review) (*entity.Review, error) {
			assert.Equal(t, tourID, doc.Tour)
			assert.Equal(t, 5, doc.Rating)

			return doc, nil
		})
	rec = s.do(http.MethodPost, "/api/v1/tours/"+tourID.Hex()+"/reviews", string(entity.RoleUser), `{"review":"Great","rating":5}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/tours/xyz/reviews", string(entity.RoleUser), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid tourId: xyz.", decode(t, rec).Message)
}

func TestServer_ReviewCreateRestrictedToUsers(t *testing.T) {
	s := newTestServer(t)
	s.loginAs(entity.RoleGuide)

	rec := s.do(http.MethodPost, "/api/v1/reviews", string(entity.RoleGuide), `{"review":"Great","rating":5}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_ReviewUpdateKeepsTour(t *testing.T) {
	s := newTestServer(t)
	s.loginAs(entity.RoleUser)
	tourID := primitive.NewObjectID()
	existing := &entity.Review{ID: primitive.NewObjectID(), Review: "ok", Rating: 3, Tour: tourID}

	s.reviewUC.EXPECT().Update(mock.Anything, existing.ID.Hex(), mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, patch func(*entity.Review) error) (*entity.Review, error) {
			require.NoError(t, patch(existing))

			return existing, nil
		})

	body := `{"rating":4,"tour":"` + primitive.NewObjectID().Hex() + `"}`
	rec := s.do(http.MethodPatch, "/api/v1/reviews/"+existing.ID.Hex(), string(entity.RoleUser), body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 4, existing.Rating)
	assert.Equal(t, tourID, existing.Tour)
}

func TestServer_LoginAndLogout(t *testing.T) {
	s := newTestServer(t)
	user := &entity.User{ID: primitive.NewObjectID(), Name: "Laura", Email: "laura@example.com"}

	s.authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "laura@example.com", Password: "pass1234"}).
		Return(&usecase.AuthOutput{Token: "signed", User: user}, nil)

	rec := s.do(http.MethodPost, "/api/v1/users/login", "", `{"email":"laura@example.com","password":"pass1234"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := decode(t, rec)
	assert.Equal(t, "signed", env.Token)
	assert.Contains(t, string(env.Data["user"]), "laura@example.com")
	assert.NotContains(t, rec.Body.String(), "password")

	cookie := findCookie(rec, constants.AccessTokenCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed", cookie.Value)
	assert.True(t, cookie.HttpOnly)

	rec = s.do(http.MethodPost, "/api/v1/users/logout", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	cookie = findCookie(rec, constants.AccessTokenCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, apimiddleware.LoggedOutCookieValue, cookie.Value)
}

func TestServer_Signup(t *testing.T) {
	s := newTestServer(t)

	s.authUC.EXPECT().Signup(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in *usecase.SignupInput) (*usecase.AuthOutput, error) {
			assert.Equal(t, "pass1234", in.ConfirmPassword)

			return &usecase.AuthOutput{Token: "t", User: &entity.User{Name: in.Name}}, nil
		})

	rec := s.do(http.MethodPost, "/api/v1/users/signup", "",
		`{"name":"Laura","email":"laura@example.com","password":"pass1234","passwordConfirm":"pass1234"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/users/signup", "", `{"name":"Laura","role":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid field: role.", decode(t, rec).Message)
}

func TestServer_PasswordFlows(t *testing.T) {
	s := newTestServer(t)
	user := s.loginAs(entity.RoleUser)

	s.authUC.EXPECT().ForgotPassword(mock.Anything, &usecase.ForgotPasswordInput{Email: "nobody@example.com"}).
		Return(domainerrors.ErrNoUserWithEmail).Once()
	rec := s.do(http.MethodPost, "/api/v1/users/forgotPassword", "", `{"email":"nobody@example.com"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	s.authUC.EXPECT().ForgotPassword(mock.Anything, mock.Anything).Return(nil).Once()
	rec = s.do(http.MethodPost, "/api/v1/users/forgotPassword", "", `{"email":"laura@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Token sent to email!", decode(t, rec).Message)

	s.authUC.EXPECT().ResetPassword(mock.Anything, "plain-token", mock.Anything).
		Return(&usecase.AuthOutput{Token: "fresh", User: user}, nil)
	rec = s.do(http.MethodPatch, "/api/v1/users/resetPassword/plain-token", "", `{"password":"newpass123","passwordConfirm":"newpass123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fresh", decode(t, rec).Token)

	s.authUC.EXPECT().UpdateMyPassword(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *usecase.UpdatePasswordInput) (*usecase.AuthOutput, error) {
			assert.Equal(t, user, deliverycontext.GetUser(ctx))

			return &usecase.AuthOutput{Token: "rotated", User: user}, nil
		})
	rec = s.do(http.MethodPatch, "/api/v1/users/updateMyPassword", string(entity.RoleUser),
		`{"passwordCurrent":"pass1234","password":"newpass123","passwordConfirm":"newpass123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rotated", decode(t, rec).Token)
}

func TestServer_EmailVerification(t *testing.T) {
	s := newTestServer(t)
	user := s.loginAs(entity.RoleUser)

	s.authUC.EXPECT().VerifyEmail(mock.Anything, "verify-token").Return(&usecase.AuthOutput{Token: "t", User: user}, nil)
	rec := s.do(http.MethodPatch, "/api/v1/users/verify-email/verify-token", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	s.authUC.EXPECT().ResendVerification(mock.Anything).Return(domainerrors.ErrEmailAlreadyVerified)
	rec = s.do(http.MethodPost, "/api/v1/users/resendVerification", string(entity.RoleUser), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Me(t *testing.T) {
	s := newTestServer(t)
	user := s.loginAs(entity.RoleUser)

	s.userUC.EXPECT().Me(mock.Anything).Return(user, nil)
	rec := s.do(http.MethodGet, "/api/v1/users/me", string(entity.RoleUser), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data["user"]), user.ID.Hex())

	s.userUC.EXPECT().UpdateMe(mock.Anything, mock.MatchedBy(func(in *usecase.UpdateMeInput) bool {
		return in.Name != nil && *in.Name == "Renamed" && in.Email == nil
	})).Return(user, nil).Once()
	rec = s.do(http.MethodPatch, "/api/v1/users/updateMe", string(entity.RoleUser), `{"name":"Renamed"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	s.userUC.EXPECT().UpdateMe(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrPasswordRoute).Once()
	rec = s.do(http.MethodPatch, "/api/v1/users/updateMe", string(entity.RoleUser), `{"password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPatch, "/api/v1/users/updateMe", string(entity.RoleUser), `{"roles":["admin"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid field: roles.", decode(t, rec).Message)

	s.userUC.EXPECT().DeleteMe(mock.Anything).Return(nil)
	rec = s.do(http.MethodDelete, "/api/v1/users/deleteMe", string(entity.RoleUser), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_AdminUserRoutes(t *testing.T) {
	s := newTestServer(t)
	s.loginAs(entity.RoleUser)
	s.loginAs(entity.RoleAdmin)

	rec := s.do(http.MethodGet, "/api/v1/users", string(entity.RoleUser), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	s.userUC.EXPECT().List(mock.Anything, bson.M(nil), mock.Anything).
		Return(&usecase.ListOutput[entity.User]{Items: []*entity.User{}, Results: 0}, nil)
	rec = s.do(http.MethodGet, "/api/v1/users", string(entity.RoleAdmin), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}

	return nil
}
