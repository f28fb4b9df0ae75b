package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"portfolio_web_echo/internal/services"
)

// Context keys set by RequireAuth
const (
	ContextUserUID   = "userUID"
	ContextUserEmail = "userEmail"
	ContextUserName  = "userName"
)

// SessionCookie is the name of the admin session cookie
const SessionCookie = "session"

// RequireAuth returns a middleware that verifies Firebase session cookies
func RequireAuth(sessions services.SessionManager, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Check if Firebase is initialized
			if sessions == nil {
				return c.Redirect(http.StatusTemporaryRedirect, "/login?error=auth_not_configured")
			}

			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusTemporaryRedirect, "/login")
			}

			session, err := sessions.VerifySession(c.Request().Context(), cookie.Value)
			if err != nil {
				logger.Info("rejected session cookie", zap.Error(err))
				// Invalid session, clear cookie and redirect
				c.SetCookie(ClearedSessionCookie())
				return c.Redirect(http.StatusTemporaryRedirect, "/login")
			}

			// Set user info in context for downstream handlers
			c.Set(ContextUserUID, session.UID)
			c.Set(ContextUserEmail, session.Email)
			c.Set(ContextUserName, session.Name)

			return next(c)
		}
	}
}

// ClearedSessionCookie expires the session cookie
func ClearedSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	}
}

// StringFromContext safely gets a string set on the echo context
func StringFromContext(c echo.Context, key string) string {
	val := c.Get(key)
	if val == nil {
		return ""
	}
	strVal, ok := val.(string)
	if !ok {
		return ""
	}
	return strVal
}
