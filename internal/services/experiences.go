package services

import (
	"context"
	"fmt"
	"net/http"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/models"
)

// ExperiencesService talks to the /experiences resource
type ExperiencesService struct {
	client *apiclient.Client
}

func NewExperiencesService(client *apiclient.Client) *ExperiencesService {
	return &ExperiencesService{client: client}
}

func (s *ExperiencesService) GetActive(ctx context.Context) ([]models.Experience, error) {
	return apiclient.Fetch[[]models.Experience](ctx, s.client, http.MethodGet, "/experiences/active", nil)
}

func (s *ExperiencesService) GetAllAdmin(ctx context.Context) ([]models.Experience, error) {
	return apiclient.Fetch[[]models.Experience](ctx, s.client, http.MethodGet, "/experiences", nil)
}

func (s *ExperiencesService) GetByID(ctx context.Context, id int) (*models.Experience, error) {
	return apiclient.Fetch[*models.Experience](ctx, s.client, http.MethodGet, fmt.Sprintf("/experiences/%d", id), nil)
}

func (s *ExperiencesService) Create(ctx context.Context, input models.ExperienceInput) (*models.Experience, error) {
	return apiclient.Fetch[*models.Experience](ctx, s.client, http.MethodPost, "/experiences", input)
}

func (s *ExperiencesService) Update(ctx context.Context, id int, input models.ExperienceInput) (*models.Experience, error) {
	return apiclient.Fetch[*models.Experience](ctx, s.client, http.MethodPut, fmt.Sprintf("/experiences/%d", id), input)
}

func (s *ExperiencesService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/experiences/%d", id))
}
