package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/config"
	"portfolio_web_echo/internal/middleware"
	"portfolio_web_echo/internal/models"
	"portfolio_web_echo/internal/services"
	"portfolio_web_echo/internal/stores"
)

// fakeAPI serves canned envelopes per "METHOD /path" and records request bodies
type fakeAPI struct {
	mu        sync.Mutex
	responses map[string]string
	hits      map[string]int
	bodies    map[string]string
}

func (f *fakeAPI) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[key]
}

type fakeSessions struct{}

func (fakeSessions) CreateSession(_ context.Context, idToken string) (string, error) {
	if idToken != "valid-token" {
		return "", errors.New("token expired")
	}
	return "session-value", nil
}

func (fakeSessions) VerifySession(_ context.Context, cookie string) (*services.Session, error) {
	if cookie != "session-value" {
		return nil, errors.New("invalid session")
	}
	return &services.Session{UID: "u1", Email: "admin@example.com"}, nil
}

var siteContent = map[string]string{
	"GET /AboutMe":                  `{"success":true,"data":{"id":1,"fullName":"Jane Doe","title":"Engineer","bio":"Builds things"}}`,
	"GET /Projects/featured":        `{"success":true,"data":[{"id":1,"title":"Alpha","projectType":"Web"}]}`,
	"GET /Projects/active":          `{"success":true,"data":[{"id":1,"title":"Alpha","projectType":"Web"},{"id":2,"title":"Beta","projectType":"CLI"},{"id":3,"title":"Gamma","projectType":"Web"}]}`,
	"GET /Projects/type/CLI":        `{"success":true,"data":[{"id":2,"title":"Beta","projectType":"CLI"}]}`,
	"GET /Projects/1":               `{"success":true,"data":{"id":1,"title":"Alpha","description":"The first one"}}`,
	"GET /skills/active":            `{"success":true,"data":[{"id":1,"name":"Go","category":"Backend","proficiency":90}]}`,
	"GET /technologies/active":      `{"success":true,"data":[{"id":1,"name":"Echo"}]}`,
	"GET /experiences/active":       `{"success":false,"message":"Experience service down"}`,
	"GET /education":                `{"success":true,"data":[]}`,
	"GET /certifications":           `{"success":true,"data":[]}`,
	"GET /testimonials":             `{"success":true,"data":[]}`,
	"GET /SiteSettings/dictionary":  `{"success":true,"data":{"SiteName":"Jane Doe","Tagline":"Go all the way down","ContactEmail":"jane@example.com"}}`,
	"GET /socialmedia/active":       `{"success":true,"data":[{"id":1,"platform":"GitHub","url":"https://github.com/jane"}]}`,
	"POST /contactmessages":         `{"success":true,"data":{"id":9}}`,
	"POST /testimonials":            `{"success":false,"message":"Content is required"}`,
	"GET /contactmessages/unread":   `{"success":true,"data":[{"id":4,"name":"Bob","subject":"Hello"}]}`,
	"PATCH /contactmessages/4/read": `{"success":true,"data":null}`,
	"GET /testimonials/pending":     `{"success":true,"data":[{"id":7,"clientName":"Carol"}]}`,
	"POST /testimonials/7/approve":  `{"success":false,"message":"Testimonial already approved"}`,
}

func newTestServer(t *testing.T, sessions services.SessionManager) (*echo.Echo, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{responses: siteContent, hits: map[string]int{}, bodies: map[string]string{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		body, _ := io.ReadAll(r.Body)
		api.mu.Lock()
		api.hits[key]++
		api.bodies[key] = string(body)
		resp, ok := api.responses[key]
		api.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"Not found"}`))
			return
		}
		w.Write([]byte(resp))
	}))
	t.Cleanup(srv.Close)

	cfg, err := config.FromEnv(func(key string) string {
		if key == "API_BASE_URL" {
			return srv.URL
		}
		return ""
	})
	require.NoError(t, err)

	logger := zap.NewNop()
	set := services.NewSet(apiclient.New(srv.URL, apiclient.WithLogger(logger)))

	e := echo.New()
	e.HTTPErrorHandler = middleware.CustomErrorHandler(cfg.SiteTitle, logger)
	Register(e, Deps{
		Config:   cfg,
		Services: set,
		Stores:   stores.NewRegistry(set, stores.RegistryConfig{Logger: logger}),
		Sessions: sessions,
		Logger:   logger,
	})
	return e, api
}

func do(e *echo.Echo, method, target string, form url.Values, headers map[string]string) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHomeRendersEverySection(t *testing.T) {
	e, api := newTestServer(t, nil)

	rec := do(e, http.MethodGet, "/", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Home | Portfolio</title>")
	assert.Contains(t, body, "Jane Doe")
	assert.Contains(t, body, "Go all the way down")
	assert.Contains(t, body, `href="/project/1"`)
	assert.Contains(t, body, "Experience service down", "a failing section shows its own error")
	assert.Contains(t, body, "jane@example.com")
	assert.Contains(t, body, "https://github.com/jane")

	// a second visit is served from the stores
	do(e, http.MethodGet, "/", nil, nil)
	assert.Equal(t, 1, api.count("GET /AboutMe"))
	assert.Equal(t, 1, api.count("GET /Projects/featured"))
}

func TestProjectsPage(t *testing.T) {
	e, api := newTestServer(t, nil)

	rec := do(e, http.MethodGet, "/projects", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Projects | Portfolio</title>")
	assert.Contains(t, body, "Gamma")
	assert.Contains(t, body, `href="/projects?type=CLI"`)

	rec = do(e, http.MethodGet, "/projects?type=CLI", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, "Beta")
	assert.NotContains(t, body, `href="/project/3"`)

	do(e, http.MethodGet, "/projects?type=CLI", nil, nil)
	assert.Equal(t, 2, api.count("GET /Projects/type/CLI"), "filtered lists are not cached")
	assert.Equal(t, 1, api.count("GET /Projects/active"))
}

func TestProjectDetails(t *testing.T) {
	e, _ := newTestServer(t, nil)

	tests := []struct {
		name        string
		target      string
		wantStatus  int
		wantContain string
	}{
		{"found", "/project/1", http.StatusOK, "The first one"},
		{"backend error", "/project/42", http.StatusOK, "Not found"},
		{"non numeric id", "/project/abc", http.StatusNotFound, "Project not found"},
		{"zero id", "/project/0", http.StatusNotFound, "Project not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodGet, tt.target, nil, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantContain)
		})
	}
}

func TestSubmitContact(t *testing.T) {
	e, api := newTestServer(t, nil)
	form := url.Values{
		"name":    {"Ann"},
		"email":   {"ann@example.com"},
		"subject": {"Hi"},
		"message": {"Nice site"},
	}

	rec := do(e, http.MethodPost, "/contact", form, map[string]string{"HX-Request": "true"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<section id="contact"`), "htmx gets the fragment only")
	assert.Contains(t, body, "Your message has been sent successfully!")
	assert.JSONEq(t, `{"name":"Ann","email":"ann@example.com","subject":"Hi","message":"Nice site"}`, api.bodies["POST /contactmessages"])

	rec = do(e, http.MethodPost, "/contact", form, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
}

func TestSubmitTestimonialShowsBackendMessage(t *testing.T) {
	e, _ := newTestServer(t, nil)

	rec := do(e, http.MethodPost, "/testimonials", url.Values{"clientName": {"Dan"}, "rating": {"5"}}, map[string]string{"HX-Request": "true"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Content is required")
	assert.Contains(t, rec.Body.String(), `value="Dan"`)
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(t, nil)

	rec := do(e, http.MethodGet, "/healthz", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		sessions   services.SessionManager
		auth       string
		wantStatus int
		wantCookie bool
	}{
		{"not configured", nil, "Bearer valid-token", http.StatusInternalServerError, false},
		{"missing header", fakeSessions{}, "", http.StatusUnauthorized, false},
		{"wrong scheme", fakeSessions{}, "Basic abc", http.StatusUnauthorized, false},
		{"rejected token", fakeSessions{}, "Bearer old-token", http.StatusUnauthorized, false},
		{"ok", fakeSessions{}, "Bearer valid-token", http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestServer(t, tt.sessions)
			headers := map[string]string{}
			if tt.auth != "" {
				headers[echo.HeaderAuthorization] = tt.auth
			}

			rec := do(e, http.MethodPost, "/auth/login", nil, headers)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCookie, strings.Contains(rec.Header().Get("Set-Cookie"), "session=session-value"))
		})
	}
}

func TestLogout(t *testing.T) {
	e, _ := newTestServer(t, fakeSessions{})

	rec := do(e, http.MethodPost, "/auth/logout", nil, nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")

	rec = do(e, http.MethodPost, "/auth/logout", nil, map[string]string{echo.HeaderAccept: echo.MIMEApplicationJSON})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginPageShowsConfigurationError(t *testing.T) {
	e, _ := newTestServer(t, nil)

	rec := do(e, http.MethodGet, "/login?error=auth_not_configured", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin login is not configured on this server.")
}

func TestAdminRequiresSession(t *testing.T) {
	e, api := newTestServer(t, fakeSessions{})

	rec := do(e, http.MethodGet, "/admin/messages", nil, nil)

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	assert.Zero(t, api.count("GET /contactmessages/unread"))
}

func TestAdminMessages(t *testing.T) {
	e, api := newTestServer(t, fakeSessions{})
	session := map[string]string{"Cookie": middleware.SessionCookie + "=session-value"}

	rec := do(e, http.MethodGet, "/admin/messages", nil, session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Messages | Portfolio</title>")
	assert.Contains(t, rec.Body.String(), "admin@example.com")
	assert.Contains(t, rec.Body.String(), "Hello")

	rec = do(e, http.MethodPost, "/admin/messages/4/read", nil, session)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/messages", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, 1, api.count("PATCH /contactmessages/4/read"))

	rec = do(e, http.MethodPost, "/admin/messages/x/delete", nil, session)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminModerationFailureIsFlashed(t *testing.T) {
	e, _ := newTestServer(t, fakeSessions{})
	session := map[string]string{"Cookie": middleware.SessionCookie + "=session-value"}

	rec := do(e, http.MethodPost, "/admin/testimonials/7/approve", nil, session)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	location := rec.Header().Get(echo.HeaderLocation)
	assert.Equal(t, "/admin/testimonials?error="+url.QueryEscape("Testimonial already approved"), location)

	rec = do(e, http.MethodGet, location, nil, session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Testimonial already approved")
	assert.Contains(t, rec.Body.String(), "Carol")
}

func TestProjectTypes(t *testing.T) {
	assert.Empty(t, projectTypes(nil))
	assert.Equal(t, []string{"Web", "CLI"}, projectTypes([]models.Project{
		{ID: 1, ProjectType: "Web"},
		{ID: 2, ProjectType: ""},
		{ID: 3, ProjectType: "CLI"},
		{ID: 4, ProjectType: "Web"},
	}))
}
