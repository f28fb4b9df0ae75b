package services

import (
	"context"
	"net/http"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/models"
)

// AboutMeService talks to the /AboutMe resource. The backend has no delete for it.
type AboutMeService struct {
	client *apiclient.Client
}

func NewAboutMeService(client *apiclient.Client) *AboutMeService {
	return &AboutMeService{client: client}
}

func (s *AboutMeService) Get(ctx context.Context) (*models.AboutMe, error) {
	return apiclient.Fetch[*models.AboutMe](ctx, s.client, http.MethodGet, "/AboutMe", nil)
}

// CreateOrUpdate replaces the profile record (requires admin rights on the backend)
func (s *AboutMeService) CreateOrUpdate(ctx context.Context, input models.AboutMeInput) (*models.AboutMe, error) {
	return apiclient.Fetch[*models.AboutMe](ctx, s.client, http.MethodPost, "/AboutMe", input)
}
