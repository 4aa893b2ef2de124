// Package router contains routing setup for the HTTP delivery.
package router

import (
	"enplan/internal/delivery/http/middleware"
	"enplan/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	ProjectHandler   *handler.ProjectHandler
	ComponentHandler *handler.ComponentHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	projectHandler   *handler.ProjectHandler
	componentHandler *handler.ComponentHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		projectHandler:   params.ProjectHandler,
		componentHandler: params.ComponentHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account lifecycle routes
	userGroup := e.Group("/users")
	{
		userGroup.POST("/auth/register", r.accountHandler.Register)
		userGroup.POST("/auth/login", r.accountHandler.Login)
	}

	// Account routes that require authentication
	authedUserGroup := userGroup.Group("")
	authedUserGroup.Use(r.authMiddleware.Authenticate)
	{
		authedUserGroup.GET("/read", r.accountHandler.Read)
		authedUserGroup.PATCH("/update", r.accountHandler.Update)
		authedUserGroup.DELETE("/delete", r.accountHandler.Delete)
	}

	// Component catalog is public and read-only
	componentGroup := e.Group("/components")
	{
		componentGroup.GET("", r.componentHandler.List)
		componentGroup.GET("/:name", r.componentHandler.Get)
	}

	// Project routes are owner-scoped and require authentication
	projectGroup := e.Group("/projects")
	projectGroup.Use(r.authMiddleware.Authenticate)
	{
		projectGroup.POST("", r.projectHandler.Create)
		projectGroup.GET("", r.projectHandler.List)
		projectGroup.GET("/:id", r.projectHandler.Get)
		projectGroup.PATCH("/:id", r.projectHandler.Update)
		projectGroup.DELETE("/:id", r.projectHandler.Delete)
	}
}
