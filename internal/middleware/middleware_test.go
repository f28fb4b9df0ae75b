package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio_web_echo/internal/services"
)

type fakeSessions struct {
	valid map[string]*services.Session
}

func (f *fakeSessions) CreateSession(_ context.Context, idToken string) (string, error) {
	return "cookie-" + idToken, nil
}

func (f *fakeSessions) VerifySession(_ context.Context, cookie string) (*services.Session, error) {
	if s, ok := f.valid[cookie]; ok {
		return s, nil
	}
	return nil, errors.New("session cookie revoked")
}

func TestRequireAuth(t *testing.T) {
	sessions := &fakeSessions{valid: map[string]*services.Session{
		"good": {UID: "u1", Email: "admin@example.com", Name: "Admin"},
	}}

	tests := []struct {
		name         string
		sessions     services.SessionManager
		cookie       string
		wantStatus   int
		wantLocation string
		wantCleared  bool
	}{
		{"not configured", nil, "good", http.StatusTemporaryRedirect, "/login?error=auth_not_configured", false},
		{"no cookie", sessions, "", http.StatusTemporaryRedirect, "/login", false},
		{"invalid cookie", sessions, "bad", http.StatusTemporaryRedirect, "/login", true},
		{"valid cookie", sessions, "good", http.StatusOK, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := RequireAuth(tt.sessions, zap.NewNop())(func(c echo.Context) error {
				return c.String(http.StatusOK, StringFromContext(c, ContextUserEmail))
			})
			require.NoError(t, handler(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
			assert.Equal(t, tt.wantCleared, strings.Contains(rec.Header().Get("Set-Cookie"), "Max-Age=0"))
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "admin@example.com", rec.Body.String())
				assert.Equal(t, "u1", c.Get(ContextUserUID))
			}
		})
	}
}

func TestDocumentTitle(t *testing.T) {
	tests := []struct {
		site, title, want string
	}{
		{"Portfolio", "Home", "Home | Portfolio"},
		{"Portfolio", "", "Portfolio"},
		{"", "Projects", "Projects | Portfolio"},
		{"Jane Doe", "Project Details", "Project Details | Jane Doe"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DocumentTitle(tt.site, tt.title))
	}
}

func TestPageTitle(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/projects", nil), httptest.NewRecorder())

	var got string
	handler := PageTitle("Portfolio", "Projects")(func(c echo.Context) error {
		got = StringFromContext(c, ContextPageTitle)
		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "Projects | Portfolio", got)
}

func TestCustomErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		accept      string
		wantStatus  int
		wantContain string
	}{
		{"not found", echo.ErrNotFound, "", http.StatusNotFound, "The page you&#39;re looking for doesn&#39;t exist."},
		{"custom message", echo.NewHTTPError(http.StatusBadRequest, "Invalid project id"), "", http.StatusBadRequest, "Invalid project id"},
		{"plain error", errors.New("boom"), "", http.StatusInternalServerError, "Something went wrong. Please try again later."},
		{"json", echo.ErrUnauthorized, echo.MIMEApplicationJSON, http.StatusUnauthorized, `"error":"Unauthorized"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/missing", nil)
			if tt.accept != "" {
				req.Header.Set(echo.HeaderAccept, tt.accept)
			}
			rec := httptest.NewRecorder()

			CustomErrorHandler("Portfolio", zap.NewNop())(tt.err, e.NewContext(req, rec))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantContain)
		})
	}
}

func TestCustomErrorHandlerRendersPageTitle(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()

	CustomErrorHandler("Portfolio", zap.NewNop())(echo.ErrNotFound, e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec))

	assert.Contains(t, rec.Body.String(), "<title>Page Not Found | Portfolio</title>")
}
