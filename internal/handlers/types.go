package handlers

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"portfolio_web_echo/internal/middleware"
	"portfolio_web_echo/internal/models"
	"portfolio_web_echo/internal/stores"
	"portfolio_web_echo/web/templates/shared"
)

// Route names of the public pages
const (
	RouteHome           = "home"
	RouteProjects       = "projects"
	RouteProjectDetails = "project-details"
)

// RouteMeta is the metadata attached to a route
type RouteMeta struct {
	Title string
}

// Route represents one entry of the page route table
type Route struct {
	Name string
	Path string
	Meta RouteMeta
}

// PublicRoutes is the route table of the public site
var PublicRoutes = []Route{
	{Name: RouteHome, Path: "/", Meta: RouteMeta{Title: "Home"}},
	{Name: RouteProjects, Path: "/projects", Meta: RouteMeta{Title: "Projects"}},
	{Name: RouteProjectDetails, Path: "/project/:id", Meta: RouteMeta{Title: "Project Details"}},
}

// layoutData builds the shell props shared by every page. Site settings and social
// links are fetched once per process and reused.
func layoutData(c echo.Context, registry *stores.Registry, siteTitle, activeNav string, breadcrumbs []shared.Breadcrumb) shared.LayoutProps {
	ctx := c.Request().Context()
	registry.SiteSettings.Fetch(ctx)
	social := registry.SocialMedia.FetchActive(ctx)

	siteName := registry.SiteSettings.Setting(models.SettingSiteName)
	if siteName == "" {
		siteName = middleware.DocumentTitle(siteTitle, "")
	}

	title := middleware.StringFromContext(c, middleware.ContextPageTitle)
	if title == "" {
		title = middleware.DocumentTitle(siteTitle, "")
	}

	return shared.LayoutProps{
		Title:       title,
		SiteName:    siteName,
		ActiveNav:   activeNav,
		Breadcrumbs: breadcrumbs,
		UserEmail:   middleware.StringFromContext(c, middleware.ContextUserEmail),
		FooterText:  registry.SiteSettings.Setting(models.SettingFooterText),
		SocialLinks: social.Data,
	}
}

// render writes a templ component as the HTML response
func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response())
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
