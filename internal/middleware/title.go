package middleware

import (
	"github.com/labstack/echo/v4"
)

// ContextPageTitle holds the document title of the matched route
const ContextPageTitle = "pageTitle"

// DefaultSiteTitle is used when no site title is configured
const DefaultSiteTitle = "Portfolio"

// DocumentTitle builds "<title> | <site>", or just the site title when the route has none
func DocumentTitle(site, title string) string {
	if site == "" {
		site = DefaultSiteTitle
	}
	if title == "" {
		return site
	}
	return title + " | " + site
}

// PageTitle sets the route's document title on the context before the handler runs
func PageTitle(site, title string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextPageTitle, DocumentTitle(site, title))
			return next(c)
		}
	}
}
