package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/models"
	"portfolio_web_echo/internal/services"
	"portfolio_web_echo/internal/stores"
	"portfolio_web_echo/web/templates/pages"
	"portfolio_web_echo/web/templates/shared"
)

// PublicHandler serves the portfolio pages and the visitor forms
type PublicHandler struct {
	stores    *stores.Registry
	projects  *services.ProjectsService
	siteTitle string
	logger    *zap.Logger
}

func NewPublicHandler(registry *stores.Registry, projects *services.ProjectsService, siteTitle string, logger *zap.Logger) *PublicHandler {
	return &PublicHandler{stores: registry, projects: projects, siteTitle: siteTitle, logger: logger}
}

// Home renders the one-page portfolio
func (h *PublicHandler) Home(c echo.Context) error {
	props := h.homeProps(c)
	return render(c, http.StatusOK, pages.Home(props))
}

// homeProps fetches every section concurrently. Stores keep their own error state,
// so a failing section never fails the page.
func (h *PublicHandler) homeProps(c echo.Context) pages.HomeProps {
	ctx := c.Request().Context()
	r := h.stores
	var props pages.HomeProps

	var g errgroup.Group
	g.Go(func() error { props.AboutMe = r.AboutMe.Fetch(ctx); return nil })
	g.Go(func() error { props.Featured = r.Projects.FetchFeatured(ctx); return nil })
	g.Go(func() error { props.Skills = r.Skills.FetchActive(ctx); return nil })
	g.Go(func() error { props.Technologies = r.Technologies.FetchActive(ctx); return nil })
	g.Go(func() error { props.Experiences = r.Experiences.FetchActive(ctx); return nil })
	g.Go(func() error { props.Education = r.Education.FetchActive(ctx); return nil })
	g.Go(func() error { props.Certifications = r.Certifications.FetchActive(ctx); return nil })
	g.Go(func() error { props.Testimonials = r.Testimonials.FetchActive(ctx); return nil })
	g.Go(func() error { r.SiteSettings.Fetch(ctx); return nil })
	g.Go(func() error { r.SocialMedia.FetchActive(ctx); return nil })
	_ = g.Wait()

	props.SkillGroups = stores.GroupSkills(props.Skills.Data)
	props.SkillCategories = r.Skills.Categories()
	props.Tagline = r.SiteSettings.Setting(models.SettingTagline)
	props.Contact = pages.ContactProps{Email: r.SiteSettings.Setting(models.SettingContactMail)}
	props.Layout = layoutData(c, r, h.siteTitle, RouteHome, nil)
	return props
}

// Projects renders the active projects, optionally filtered by ?type=
func (h *PublicHandler) Projects(c echo.Context) error {
	ctx := c.Request().Context()
	projectType := strings.TrimSpace(c.QueryParam("type"))

	state := h.stores.Projects.FetchActive(ctx)
	types := projectTypes(state.Data)

	// filtered lists are not cached, the store only holds the full active list
	if projectType != "" {
		list, err := h.projects.GetByType(ctx, projectType)
		state = stores.State[[]models.Project]{Data: list}
		if err != nil {
			state.Err = apiclient.Message(err, fmt.Sprintf("Failed to fetch %s projects.", projectType))
			h.logger.Warn("failed to fetch projects by type", zap.String("type", projectType), zap.Error(err))
		}
	}

	breadcrumbs := []shared.Breadcrumb{
		{Title: "Home", URL: "/"},
		{Title: "Projects", URL: ""},
	}

	props := pages.ProjectsProps{
		Layout:   layoutData(c, h.stores, h.siteTitle, RouteProjects, breadcrumbs),
		Projects: state,
		Types:    types,
		Type:     projectType,
	}
	return render(c, http.StatusOK, pages.Projects(props))
}

// ProjectDetails renders one project by id
func (h *PublicHandler) ProjectDetails(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Project not found")
	}

	state := h.stores.Projects.FetchByID(c.Request().Context(), id)

	title := "Project Details"
	if state.Data != nil {
		title = state.Data.Title
	}
	breadcrumbs := []shared.Breadcrumb{
		{Title: "Home", URL: "/"},
		{Title: "Projects", URL: "/projects"},
		{Title: title, URL: ""},
	}

	props := pages.ProjectDetailsProps{
		Layout:  layoutData(c, h.stores, h.siteTitle, RouteProjects, breadcrumbs),
		Project: state,
	}
	return render(c, http.StatusOK, pages.ProjectDetails(props))
}

// SubmitContact sends the contact form. htmx requests get the contact section back,
// plain form posts get the whole home page.
func (h *PublicHandler) SubmitContact(c echo.Context) error {
	var input models.ContactMessageInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid contact form")
	}

	status, ok := h.stores.Contact.Submit(c.Request().Context(), input)
	if !ok {
		h.logger.Info("contact message rejected", zap.String("error", status.Err))
	}

	contact := pages.ContactProps{
		Email:  h.stores.SiteSettings.Setting(models.SettingContactMail),
		Input:  input,
		Status: status,
	}
	if isHTMX(c) {
		return render(c, http.StatusOK, pages.ContactSection(contact))
	}

	props := h.homeProps(c)
	props.Contact = contact
	return render(c, http.StatusOK, pages.Home(props))
}

// SubmitTestimonial sends a visitor testimonial for approval
func (h *PublicHandler) SubmitTestimonial(c echo.Context) error {
	var input models.TestimonialInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid testimonial form")
	}

	form := pages.TestimonialFormProps{Input: input}
	if err := h.stores.Testimonials.Submit(c.Request().Context(), input); err != nil {
		form.Err = apiclient.Message(err, stores.TestimonialFailedMessage)
		h.logger.Info("testimonial rejected", zap.Error(err))
	} else {
		form.Success = stores.TestimonialSuccessMessage
	}

	if isHTMX(c) {
		return render(c, http.StatusOK, pages.TestimonialForm(form))
	}

	props := h.homeProps(c)
	props.TestimonialForm = form
	return render(c, http.StatusOK, pages.Home(props))
}

// Health reports that the server is up
func (h *PublicHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// projectTypes lists the distinct project types in first-seen order
func projectTypes(projects []models.Project) []string {
	seen := make(map[string]bool)
	var types []string
	for _, p := range projects {
		if p.ProjectType == "" || seen[p.ProjectType] {
			continue
		}
		seen[p.ProjectType] = true
		types = append(types, p.ProjectType)
	}
	return types
}
