package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"portfolio_web_echo/web/templates/pages"
	"portfolio_web_echo/web/templates/shared"
)

// CustomErrorHandler creates an error handler rendering the error page
func CustomErrorHandler(siteTitle string, logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		errorTitle := "Internal Server Error"
		errorMessage := ""

		// Check if it's an Echo HTTPError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok && msg != "" {
				errorMessage = msg
			}
		}

		// Set title and default message if no custom message provided
		switch code {
		case http.StatusNotFound:
			errorTitle = "Page Not Found"
			if errorMessage == "" || errorMessage == http.StatusText(code) {
				errorMessage = "The page you're looking for doesn't exist."
			}
		case http.StatusForbidden:
			errorTitle = "Access Denied"
			if errorMessage == "" {
				errorMessage = "You don't have permission to access this resource."
			}
		case http.StatusUnauthorized:
			errorTitle = "Unauthorized"
			if errorMessage == "" {
				errorMessage = "Please log in to continue."
			}
		case http.StatusBadRequest:
			errorTitle = "Bad Request"
			if errorMessage == "" {
				errorMessage = "The request could not be processed."
			}
		default:
			if errorMessage == "" || code >= http.StatusInternalServerError {
				errorMessage = "Something went wrong. Please try again later."
			}
		}

		if code >= http.StatusInternalServerError {
			logger.Error("request failed", zap.String("path", c.Request().URL.Path), zap.Int("status", code), zap.Error(err))
		} else {
			logger.Debug("request rejected", zap.String("path", c.Request().URL.Path), zap.Int("status", code), zap.Error(err))
		}

		if strings.HasPrefix(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
			if jsonErr := c.JSON(code, map[string]string{"error": errorMessage}); jsonErr != nil {
				logger.Error("failed to write error response", zap.Error(jsonErr))
			}
			return
		}

		props := pages.ErrorPageProps{
			Layout: shared.LayoutProps{
				Title:     DocumentTitle(siteTitle, errorTitle),
				SiteName:  DocumentTitle(siteTitle, ""),
				UserEmail: StringFromContext(c, ContextUserEmail),
				Breadcrumbs: []shared.Breadcrumb{
					{Title: "Home", URL: "/"},
					{Title: "Error", URL: ""},
				},
			},
			StatusCode:   code,
			ErrorTitle:   errorTitle,
			ErrorMessage: errorMessage,
		}

		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().WriteHeader(code)
		if c.Request().Method == http.MethodHead {
			return
		}
		if renderErr := pages.ErrorPage(props).Render(c.Request().Context(), c.Response()); renderErr != nil {
			// Fallback to plain text if template fails
			logger.Error("failed to render error page", zap.Error(renderErr))
			c.Response().Write([]byte(errorMessage))
		}
	}
}
