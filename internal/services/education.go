package services

import (
	"context"
	"fmt"
	"net/http"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/models"
)

// EducationService talks to the /education resource.
// Unlike most resources the public list lives at the collection root.
type EducationService struct {
	client *apiclient.Client
}

func NewEducationService(client *apiclient.Client) *EducationService {
	return &EducationService{client: client}
}

func (s *EducationService) GetActive(ctx context.Context) ([]models.Education, error) {
	return apiclient.Fetch[[]models.Education](ctx, s.client, http.MethodGet, "/education", nil)
}

func (s *EducationService) GetAllAdmin(ctx context.Context) ([]models.Education, error) {
	return apiclient.Fetch[[]models.Education](ctx, s.client, http.MethodGet, "/education/admin", nil)
}

func (s *EducationService) GetByID(ctx context.Context, id int) (*models.Education, error) {
	return apiclient.Fetch[*models.Education](ctx, s.client, http.MethodGet, fmt.Sprintf("/education/%d", id), nil)
}

func (s *EducationService) Create(ctx context.Context, input models.EducationInput) (*models.Education, error) {
	return apiclient.Fetch[*models.Education](ctx, s.client, http.MethodPost, "/education", input)
}

func (s *EducationService) Update(ctx context.Context, id int, input models.EducationInput) (*models.Education, error) {
	return apiclient.Fetch[*models.Education](ctx, s.client, http.MethodPut, fmt.Sprintf("/education/%d", id), input)
}

func (s *EducationService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/education/%d", id))
}
