package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/models"
)

// ProjectsService talks to the /Projects resource
type ProjectsService struct {
	client *apiclient.Client
}

func NewProjectsService(client *apiclient.Client) *ProjectsService {
	return &ProjectsService{client: client}
}

// GetActive returns the active projects (public)
func (s *ProjectsService) GetActive(ctx context.Context) ([]models.Project, error) {
	return apiclient.Fetch[[]models.Project](ctx, s.client, http.MethodGet, "/Projects/active", nil)
}

// GetFeatured returns the featured projects (public)
func (s *ProjectsService) GetFeatured(ctx context.Context) ([]models.Project, error) {
	return apiclient.Fetch[[]models.Project](ctx, s.client, http.MethodGet, "/Projects/featured", nil)
}

// GetByID returns the full details of one project
func (s *ProjectsService) GetByID(ctx context.Context, id int) (*models.ProjectDetails, error) {
	return apiclient.Fetch[*models.ProjectDetails](ctx, s.client, http.MethodGet, fmt.Sprintf("/Projects/%d", id), nil)
}

// GetByType returns the active projects of one type
func (s *ProjectsService) GetByType(ctx context.Context, projectType string) ([]models.Project, error) {
	return apiclient.Fetch[[]models.Project](ctx, s.client, http.MethodGet, "/Projects/type/"+url.PathEscape(projectType), nil)
}

// GetAll returns active and inactive projects (admin)
func (s *ProjectsService) GetAll(ctx context.Context) ([]models.Project, error) {
	return apiclient.Fetch[[]models.Project](ctx, s.client, http.MethodGet, "/Projects", nil)
}

func (s *ProjectsService) Create(ctx context.Context, input models.ProjectInput) (*models.ProjectDetails, error) {
	return apiclient.Fetch[*models.ProjectDetails](ctx, s.client, http.MethodPost, "/Projects", input)
}

func (s *ProjectsService) Update(ctx context.Context, id int, input models.ProjectInput) (*models.ProjectDetails, error) {
	return apiclient.Fetch[*models.ProjectDetails](ctx, s.client, http.MethodPut, fmt.Sprintf("/Projects/%d", id), input)
}

func (s *ProjectsService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/Projects/%d", id))
}

func (s *ProjectsService) ToggleActive(ctx context.Context, id int) error {
	return s.client.Patch(ctx, fmt.Sprintf("/Projects/%d/toggle-active", id), nil)
}

func (s *ProjectsService) ToggleFeatured(ctx context.Context, id int) error {
	return s.client.Patch(ctx, fmt.Sprintf("/Projects/%d/toggle-featured", id), nil)
}
