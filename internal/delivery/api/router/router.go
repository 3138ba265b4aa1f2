// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tourbook/internal/delivery/api/middleware"
	"tourbook/internal/delivery/api/router/handler"
	"tourbook/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APIPrefix is where every resource route is mounted.
const APIPrefix = "/api/v1"

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	TourHandler         *handler.TourHandler
	ReviewHandler       *handler.ReviewHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler   *handler.AuthHandler
	userHandler   *handler.UserHandler
	tourHandler   *handler.TourHandler
	reviewHandler *handler.ReviewHandler
	healthHandler *handler.HealthHandler
	auth          *middleware.AuthMiddleware
	rateLimit     *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:   params.AuthHandler,
		userHandler:   params.UserHandler,
		tourHandler:   params.TourHandler,
		reviewHandler: params.ReviewHandler,
		healthHandler: params.HealthHandler,
		auth:          params.AuthMiddleware,
		rateLimit:     params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Middleware is attached per route so unmatched paths still fall through to the 404 handler.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	api := e.Group(APIPrefix)
	r.registerUserRoutes(api.Group("/users"))
	r.registerTourRoutes(api.Group("/tours"))
	r.registerReviewRoutes(api.Group("/reviews"))
}

func (r *router) registerUserRoutes(g *echo.Group) {
	protect := r.auth.Authenticate
	admin := r.auth.RestrictTo(entity.RoleAdmin)
	limited := r.rateLimit.Limit()

	g.POST("/signup", r.authHandler.Signup)
	g.POST("/login", r.authHandler.Login, limited)
	g.POST("/logout", r.authHandler.Logout)
	g.PATCH("/verify-email/:token", r.authHandler.VerifyEmail)
	g.POST("/resendVerification", r.authHandler.ResendVerification, protect)
	g.POST("/forgotPassword", r.authHandler.ForgotPassword, limited)
	g.PATCH("/resetPassword/:token", r.authHandler.ResetPassword)
	g.PATCH("/updateMyPassword", r.authHandler.UpdateMyPassword, protect)

	g.GET("/me", r.userHandler.Me, protect)
	g.PATCH("/updateMe", r.userHandler.UpdateMe, protect)
	g.DELETE("/deleteMe", r.userHandler.DeleteMe, protect)

	g.GET("", r.userHandler.List, protect, admin)
	g.GET("/:id", r.userHandler.Get, protect, admin)
	g.PATCH("/:id", r.userHandler.Update, protect, admin)
	g.DELETE("/:id", r.userHandler.Delete, protect, admin)
}

func (r *router) registerTourRoutes(g *echo.Group) {
	protect := r.auth.Authenticate
	managers := r.auth.RestrictTo(entity.RoleAdmin, entity.RoleLeadGuide)
	staff := r.auth.RestrictTo(entity.RoleAdmin, entity.RoleLeadGuide, entity.RoleGuide)

	g.GET("", r.tourHandler.List)
	g.POST("", r.tourHandler.Create, protect, managers)
	g.GET("/top-5-cheap", r.tourHandler.TopFiveCheap)
	g.GET("/stats", r.tourHandler.Stats)
	g.GET("/monthly-plan/:year", r.tourHandler.MonthlyPlan, protect, staff)
	g.GET("/tours-within/:distance/center/:latlng/unit/:unit", r.tourHandler.ToursWithin)
	g.GET("/distances/:latlng/unit/:unit", r.tourHandler.Distances)
	g.GET("/tours-distances/:latlng/unit/:unit", r.tourHandler.Distances)

	g.GET("/:id", r.tourHandler.Get)
	g.PATCH("/:id", r.tourHandler.Update, protect, managers)
	g.DELETE("/:id", r.tourHandler.Delete, protect, managers)
	g.GET("/:id/qr", r.tourHandler.ShareQR)

	// nested reviews
	g.GET("/:tourId/reviews", r.reviewHandler.List, protect)
	g.POST("/:tourId/reviews", r.reviewHandler.Create, protect, r.auth.RestrictTo(entity.RoleUser))
}

func (r *router) registerReviewRoutes(g *echo.Group) {
	protect := r.auth.Authenticate
	owners := r.auth.RestrictTo(entity.RoleUser, entity.RoleAdmin)

	g.GET("", r.reviewHandler.List, protect)
	g.POST("", r.reviewHandler.Create, protect, r.auth.RestrictTo(entity.RoleUser))
	g.GET("/:id", r.reviewHandler.Get, protect)
	g.PATCH("/:id", r.reviewHandler.Update, protect, owners)
	g.DELETE("/:id", r.reviewHandler.Delete, protect, owners)
}
