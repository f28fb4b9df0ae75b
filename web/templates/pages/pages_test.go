package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_web_echo/internal/models"
	"portfolio_web_echo/internal/stores"
	"portfolio_web_echo/web/templates/shared"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestProjectsEscapesBackendText(t *testing.T) {
	html := renderString(t, Projects(ProjectsProps{
		Layout: shared.LayoutProps{Title: "Projects | Portfolio", SiteName: "Jane", ActiveNav: "projects"},
		Projects: stores.State[[]models.Project]{Data: []models.Project{
			{ID: 7, Title: "<script>alert(1)</script>", ImageURL: "javascript:alert(1)"},
		}},
		Types: []string{"Web & Mobile"},
		Type:  "Web & Mobile",
	}))

	assert.Contains(t, html, "<title>Projects | Portfolio</title>")
	assert.Contains(t, html, `href="/project/7"`)
	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, html, "<script>alert(1)")
	assert.NotContains(t, html, `src="javascript:`)
	assert.Contains(t, html, `<a href="/projects?type=Web+%26+Mobile" class="active">Web &amp; Mobile</a>`)
	assert.Contains(t, html, `<a href="/projects" class="active" aria-current="page">Projects</a>`)
}

func TestSectionStates(t *testing.T) {
	tests := []struct {
		name    string
		state   stores.State[[]models.Project]
		want    string
		notWant string
	}{
		{"loading", stores.State[[]models.Project]{Loading: true}, `aria-busy="true"`, "cards projects"},
		{"error", stores.State[[]models.Project]{Err: "Network Error"}, "Network Error", "cards projects"},
		{"empty", stores.State[[]models.Project]{}, "Nothing to show yet.", "cards projects"},
		{"ready", stores.State[[]models.Project]{Data: []models.Project{{ID: 1, Title: "Alpha"}}}, "Alpha", "Nothing to show yet."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := renderString(t, Projects(ProjectsProps{Projects: tt.state}))
			assert.Contains(t, html, `<section id="projects" class="section section-projects">`)
			assert.Contains(t, html, tt.want)
			assert.NotContains(t, html, tt.notWant)
		})
	}
}

func TestContactSectionClearsFormAfterSuccess(t *testing.T) {
	input := models.ContactMessageInput{Name: "Dan", Message: "Hi"}

	failed := renderString(t, ContactSection(ContactProps{Input: input, Status: stores.ContactStatus{Err: "Email is required"}}))
	assert.Contains(t, failed, `value="Dan"`)
	assert.Contains(t, failed, `<div role="alert" class="alert alert-error">Email is required</div>`)

	sent := renderString(t, ContactSection(ContactProps{Input: input, Status: stores.ContactStatus{Success: stores.ContactSuccessMessage}}))
	assert.NotContains(t, sent, `value="Dan"`)
	assert.Contains(t, sent, stores.ContactSuccessMessage)
}

func TestTestimonialFormKeepsRating(t *testing.T) {
	html := renderString(t, TestimonialForm(TestimonialFormProps{Input: models.TestimonialInput{Rating: 4}}))
	assert.Contains(t, html, `<option value="4" selected>4</option>`)
	assert.Contains(t, html, `<option value="5">5</option>`)
}

func TestLoginEmbedsFirebaseConfig(t *testing.T) {
	html := renderString(t, Login(LoginProps{Title: "Login", FirebaseProjectID: "demo"}))
	assert.Contains(t, html, `id="firebase-config"`)
	assert.Contains(t, html, `"projectId":"demo"`)
	assert.Contains(t, html, `src="/static/login.js"`)
}

func TestErrorPageDefaultsBackLink(t *testing.T) {
	html := renderString(t, ErrorPage(ErrorPageProps{ErrorTitle: "Page Not Found", ErrorMessage: "gone"}))
	assert.Contains(t, html, `<a class="button" href="/">Back to home</a>`)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "2024-03-01", shortDate("2024-03-01T00:00:00Z"))
	assert.Equal(t, "★★★☆☆", stars(3))
	assert.Equal(t, "☆☆☆☆☆", stars(-1))
	assert.Equal(t, "Acme · 2020-01-01 – Present", experienceMeta(models.Experience{CompanyName: "Acme", StartDate: "2020-01-01", IsCurrent: true}))
	assert.Equal(t, "Bob, CTO at Acme", clientLine(models.Testimonial{ClientName: "Bob", ClientTitle: "CTO", ClientCompany: "Acme"}))
}
