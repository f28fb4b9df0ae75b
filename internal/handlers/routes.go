package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"portfolio_web_echo/internal/config"
	"portfolio_web_echo/internal/middleware"
	"portfolio_web_echo/internal/services"
	"portfolio_web_echo/internal/stores"
)

// Deps is everything the route handlers need
type Deps struct {
	Config   *config.Config
	Services *services.Set
	Stores   *stores.Registry
	Sessions services.SessionManager // nil disables admin login
	Logger   *zap.Logger
}

// Register mounts every route on e
func Register(e *echo.Echo, d Deps) {
	site := d.Config.SiteTitle

	public := NewPublicHandler(d.Stores, d.Services.Projects, site, d.Logger)
	authHandler := NewAuthHandler(d.Sessions, d.Config, d.Logger)
	admin := NewAdminHandler(d.Stores, site, d.Logger)

	pageHandlers := map[string]echo.HandlerFunc{
		RouteHome:           public.Home,
		RouteProjects:       public.Projects,
		RouteProjectDetails: public.ProjectDetails,
	}
	for _, route := range PublicRoutes {
		e.GET(route.Path, pageHandlers[route.Name], middleware.PageTitle(site, route.Meta.Title)).Name = route.Name
	}

	e.POST("/contact", public.SubmitContact, middleware.PageTitle(site, "Home"))
	e.POST("/testimonials", public.SubmitTestimonial, middleware.PageTitle(site, "Home"))
	e.GET("/healthz", public.Health)

	// Auth routes
	e.GET("/login", authHandler.LoginPage)
	e.POST("/auth/login", authHandler.HandleLogin)
	e.POST("/auth/logout", authHandler.HandleLogout)

	// Protected routes
	protected := e.Group("/admin")
	protected.Use(middleware.RequireAuth(d.Sessions, d.Logger))
	protected.GET("/messages", admin.Messages, middleware.PageTitle(site, "Messages"))
	protected.POST("/messages/:id/read", admin.MarkMessageRead)
	protected.POST("/messages/:id/delete", admin.DeleteMessage)
	protected.GET("/testimonials", admin.Testimonials, middleware.PageTitle(site, "Testimonials"))
	protected.POST("/testimonials/:id/approve", admin.ApproveTestimonial)
	protected.POST("/testimonials/:id/reject", admin.RejectTestimonial)
}
