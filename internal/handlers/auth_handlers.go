package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"portfolio_web_echo/internal/config"
	"portfolio_web_echo/internal/middleware"
	"portfolio_web_echo/internal/services"
	"portfolio_web_echo/web/templates/pages"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	sessions services.SessionManager
	cfg      *config.Config
	logger   *zap.Logger
}

// NewAuthHandler creates a new AuthHandler. sessions is nil when Firebase is not configured.
func NewAuthHandler(sessions services.SessionManager, cfg *config.Config, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, cfg: cfg, logger: logger}
}

var loginErrors = map[string]string{
	"auth_not_configured": "Admin login is not configured on this server.",
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(c echo.Context) error {
	props := pages.LoginProps{
		Title:              middleware.DocumentTitle(h.cfg.SiteTitle, "Admin Login"),
		Error:              loginErrors[c.QueryParam("error")],
		FirebaseAPIKey:     h.cfg.FirebaseAPIKey,
		FirebaseAuthDomain: h.cfg.FirebaseAuthDomain,
		FirebaseProjectID:  h.cfg.FirebaseProjectID,
	}
	return render(c, http.StatusOK, pages.Login(props))
}

// HandleLogin verifies the Firebase ID token and creates a session cookie
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	if h.sessions == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Firebase not initialized",
		})
	}

	// Get ID Token from Authorization Header
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Missing authorization header",
		})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid authorization format",
		})
	}

	cookieValue, err := h.sessions.CreateSession(c.Request().Context(), tokenString)
	if err != nil {
		h.logger.Info("login rejected", zap.Error(err))
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid token",
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    cookieValue,
		MaxAge:   int(services.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, map[string]string{
		"status": "success",
	})
}

// HandleLogout clears the session cookie. The logout form gets redirected home,
// API callers get JSON.
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	c.SetCookie(middleware.ClearedSessionCookie())

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "logged out",
		})
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
