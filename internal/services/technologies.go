package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/models"
)

const technologiesEndpoint = "technologies"

// TechnologiesService talks to the /technologies resource
type TechnologiesService struct {
	client *apiclient.Client
}

func NewTechnologiesService(client *apiclient.Client) *TechnologiesService {
	return &TechnologiesService{client: client}
}

func (s *TechnologiesService) GetActive(ctx context.Context) ([]models.Technology, error) {
	return apiclient.Fetch[[]models.Technology](ctx, s.client, http.MethodGet, technologiesEndpoint+"/active", nil)
}

func (s *TechnologiesService) GetByCategory(ctx context.Context, category string) ([]models.Technology, error) {
	return apiclient.Fetch[[]models.Technology](ctx, s.client, http.MethodGet, technologiesEndpoint+"/category/"+url.PathEscape(category), nil)
}

func (s *TechnologiesService) GetAll(ctx context.Context) ([]models.Technology, error) {
	return apiclient.Fetch[[]models.Technology](ctx, s.client, http.MethodGet, technologiesEndpoint, nil)
}

func (s *TechnologiesService) GetByID(ctx context.Context, id int) (*models.Technology, error) {
	return apiclient.Fetch[*models.Technology](ctx, s.client, http.MethodGet, fmt.Sprintf("%s/%d", technologiesEndpoint, id), nil)
}

func (s *TechnologiesService) Create(ctx context.Context, input models.TechnologyInput) (*models.Technology, error) {
	return apiclient.Fetch[*models.Technology](ctx, s.client, http.MethodPost, technologiesEndpoint, input)
}

func (s *TechnologiesService) Update(ctx context.Context, id int, input models.TechnologyInput) (*models.Technology, error) {
	return apiclient.Fetch[*models.Technology](ctx, s.client, http.MethodPut, fmt.Sprintf("%s/%d", technologiesEndpoint, id), input)
}

func (s *TechnologiesService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s/%d", technologiesEndpoint, id))
}

func (s *TechnologiesService) ToggleActive(ctx context.Context, id int) error {
	return s.client.Patch(ctx, fmt.Sprintf("%s/%d/toggle-active", technologiesEndpoint, id), nil)
}
